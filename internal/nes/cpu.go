package nes

import (
	"fmt"
	"log"
)

const (
	stackStartAddr = uint16(0x100)
)

const (
	flagC = uint8(1 << iota) // Carry
	flagZ                    // Zero
	flagI                    // Interrupt Disable
	flagD                    // Decimal Mode
	flagB                    // Break Command
	flagU                    // Unused
	flagV                    // Overflow
	flagN                    // Negative
)

type addrMode uint8

const (
	addrModeIMM  addrMode = iota + 1 // Immediate
	addrModeZP                       // Zero Page
	addrModeZPX                      // Zero Page X
	addrModeZPY                      // Zero Page Y
	addrModeABS                      // Absolute
	addrModeABSX                     // Absolute X
	addrModeABSY                     // Absolute Y
	addrModeIND                      // Indirect
	addrModeINDX                     // Indirect X
	addrModeINDY                     // Indirect Y
	addrModeREL                      // Relative
	addrModeACC                      // Accumulator
	addrModeIMP                      // Implied
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMM:
		return "IMM"
	case addrModeZP:
		return "ZP"
	case addrModeZPX:
		return "ZPX"
	case addrModeZPY:
		return "ZPY"
	case addrModeABS:
		return "ABS"
	case addrModeABSX:
		return "ABSX"
	case addrModeABSY:
		return "ABSY"
	case addrModeIND:
		return "IND"
	case addrModeINDX:
		return "INDX"
	case addrModeINDY:
		return "INDY"
	case addrModeREL:
		return "REL"
	case addrModeACC:
		return "ACC"
	case addrModeIMP:
		return "IMP"
	}
	return "???"
}

// instr is one row of the opcode table: the addressing mode to fetch an
// operand with, the unbound function implementing the opcode, and its
// base cycle cost (before any page-cross/branch-taken penalty fn may
// add to c.cycles itself).
type instr struct {
	name   string
	mode   addrMode
	fn     func(c *CPU)
	cycles uint8
}

type CPU struct {
	a            uint8
	x            uint8
	y            uint8
	p            uint8
	sp           uint8
	pc           uint16
	mem          ReadWriter
	cycles       uint8
	totalCycles  uint64
	addrMode     addrMode
	operandAddr  uint16
	operandValue uint8
	pageCrossed  bool

	// illegalOpcodes counts opcodes with no table entry and the HLT
	// opcodes. They still cost 2 cycles, same as a real NOP, and never
	// stop the CPU.
	illegalOpcodes uint32
}

// IllegalOpcodeCount returns the number of unmapped and HLT opcodes
// executed since the CPU was created; Reset does not clear it. The
// undocumented opcodes that have table entries (LAX, SLO, ...) are not
// counted. Exposed for FrameStats diagnostics.
func (c *CPU) IllegalOpcodeCount() uint32 {
	return c.illegalOpcodes
}

func sameSign(a, b uint8) bool {
	return (a^b)&0x80 == 0
}

func crossesPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

func NewCPU(mem ReadWriter) *CPU {
	return &CPU{mem: mem}
}

func (c CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

func (c CPU) read16(addr uint16) uint16 {
	return uint16(c.read8(addr)) | uint16(c.read8(addr+1))<<8
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

func (c CPU) getFlag(flag uint8) bool {
	return c.p&flag > 0
}

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.p |= flag
		return
	}
	c.p &= ^flag
}

func (c *CPU) setFlagsZN(value uint8) {
	c.setFlag(flagZ, value == 0)
	c.setFlag(flagN, value&flagN > 0)
}

func (c *CPU) stackPop8() uint8 {
	c.sp++
	return c.read8(stackStartAddr | uint16(c.sp))
}

func (c *CPU) stackPop16() uint16 {
	lo := uint16(c.stackPop8())
	hi := uint16(c.stackPop8())
	return lo | hi<<8
}

func (c *CPU) stackPush8(data uint8) {
	c.write8(stackStartAddr|uint16(c.sp), data)
	c.sp--
}

func (c *CPU) stackPush16(data uint16) {
	lo := uint8(data & 0xff)
	hi := uint8(data >> 8)
	c.stackPush8(hi)
	c.stackPush8(lo)
}

// Reset the CPU to its initial state
func (c *CPU) Reset() {
	c.a = 0
	c.x = 0
	c.y = 0
	c.p = 0x00 | flagU | flagI
	c.sp = 0xfd
	c.pc = c.read16(0xfffc)
	c.cycles = 0
	c.totalCycles = 7
}

// IRQ services a level-sampled interrupt request. The scheduler samples the
// combined apu/cartridge IRQ line once per instruction and calls this
// whenever the line is asserted; IRQ itself does nothing and returns 0
// while the I flag is set. Returns the cycles spent servicing it, which
// the scheduler folds into that step's total.
func (c *CPU) IRQ() uint8 {
	if c.getFlag(flagI) {
		return 0
	}

	c.stackPush16(c.pc)
	c.setFlag(flagB, false)
	c.setFlag(flagU|flagI, true)
	c.stackPush8(c.p)
	c.pc = c.read16(0xfffe)
	c.totalCycles += 7
	return 7
}

// NMI services an edge-latched non-maskable interrupt. Unlike IRQ it is
// never masked by the I flag.
func (c *CPU) NMI() uint8 {
	c.stackPush16(c.pc)
	c.setFlag(flagB, false)
	c.setFlag(flagU|flagI, true)
	c.stackPush8(c.p)
	c.pc = c.read16(0xfffa)
	c.totalCycles += 7
	return 7
}

// Disassemble returns a map of addresses and their corresponding instructions
// from 0x0000 to 0xffff
func (c *CPU) Disassemble() map[uint16]string {
	disasm := make(map[uint16]string, 0x10000)

	addr := uint32(0)
	for addr <= 0xFFFF {
		pc := uint16(addr)
		opcode := c.read8(pc)
		instr := opcodeTable[opcode]
		if instr.fn == nil {
			disasm[pc] = fmt.Sprintf("$%04X: ???", pc)
			addr++
			continue
		}

		pc++
		skip := uint32(0)
		switch instr.mode {
		case addrModeIMM:
			operand := c.read8(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s #$%02X {%s}", addr, instr.name, operand, instr.mode)
			skip = 1
		case addrModeZP:
			operand := c.read8(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%02X {%s}", addr, instr.name, operand, instr.mode)
			skip = 1
		case addrModeZPX:
			operand := c.read8(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%02X,X {%s}", addr, instr.name, operand, instr.mode)
			skip = 1
		case addrModeZPY:
			operand := c.read8(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%02X,Y {%s}", addr, instr.name, operand, instr.mode)
			skip = 1
		case addrModeABS:
			operand := c.read16(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%04X {%s}", addr, instr.name, operand, instr.mode)
			skip = 2
		case addrModeABSX:
			operand := c.read16(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%04X,X {%s}", addr, instr.name, operand, instr.mode)
			skip = 2
		case addrModeABSY:
			operand := c.read16(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%04X,Y {%s}", addr, instr.name, operand, instr.mode)
			skip = 2
		case addrModeIND:
			operand := c.read16(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s ($%04X) {%s}", addr, instr.name, operand, instr.mode)
			skip = 2
		case addrModeINDX:
			operand := c.read8(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s ($%02X,X) {%s}", addr, instr.name, operand, instr.mode)
			skip = 1
		case addrModeINDY:
			operand := c.read8(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s ($%02X),Y {%s}", addr, instr.name, operand, instr.mode)
			skip = 1
		case addrModeREL:
			operand := uint16(c.read8(pc))
			pc++
			if operand&0x80 > 0 {
				operand |= 0xff00 // add leading 1 s to save the sign
			}
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%02X {%s}", addr, instr.name, pc+operand, instr.mode)
			skip = 1
		case addrModeACC:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s A {%s}", addr, instr.name, instr.mode)
		case addrModeIMP:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s {%s}", addr, instr.name, instr.mode)
		}

		addr = addr + 1 + skip
	}

	return disasm
}

// Step executes exactly one instruction to completion and returns the
// total number of CPU cycles it cost. Unmapped opcodes cost 2 cycles,
// bump the illegal-opcode counter, and otherwise behave like a NOP; the
// CPU never halts.
func (c *CPU) Step() uint8 {
	opcode := c.read8(c.pc)
	c.pc++
	instr := opcodeTable[opcode]
	if instr.fn == nil {
		c.illegalOpcodes++
		c.cycles = 2
	} else {
		c.fetch(instr.mode)
		c.cycles = instr.cycles
		instr.fn(c)
	}
	c.totalCycles += uint64(c.cycles)

	cycles := c.cycles
	c.addrMode = 0
	c.operandAddr = 0
	c.operandValue = 0
	c.pageCrossed = false
	return cycles
}

// addrModeFetchers dispatches each addrMode to the function that fills in
// operandAddr/operandValue/pageCrossed for it. Indexed directly by
// addrMode rather than switched on, so adding a mode is one table entry
// rather than another switch case to keep in sync.
var addrModeFetchers = [...]func(*CPU) int{
	addrModeIMM:  fetchIMM,
	addrModeZP:   fetchZP,
	addrModeZPX:  fetchZPX,
	addrModeZPY:  fetchZPY,
	addrModeABS:  fetchABS,
	addrModeABSX: fetchABSX,
	addrModeABSY: fetchABSY,
	addrModeIND:  fetchIND,
	addrModeINDX: fetchINDX,
	addrModeINDY: fetchINDY,
	addrModeREL:  fetchREL,
	addrModeACC:  fetchACC,
	addrModeIMP:  fetchIMP,
}

// fetch fetches the operand for the current instruction
// and returns the number of bytes read
func (c *CPU) fetch(addrMode addrMode) (n int) {
	c.addrMode = addrMode
	c.pageCrossed = false
	c.operandAddr = 0
	c.operandValue = 0

	fn := addrModeFetchers[addrMode]
	if fn == nil {
		log.Printf("unsupported addressing mode %d. PC: %04X\n", addrMode, c.pc)
		return 0
	}
	return fn(c)
}

func fetchIMM(c *CPU) int {
	c.operandAddr = c.pc
	c.pc++
	c.operandValue = c.read8(c.operandAddr)
	return 1
}

func fetchZP(c *CPU) int {
	c.operandAddr = uint16(c.read8(c.pc))
	c.pc++
	c.operandValue = c.read8(c.operandAddr)
	return 1
}

func fetchZPX(c *CPU) int {
	c.operandAddr = uint16(c.read8(c.pc) + c.x)
	c.pc++
	c.operandValue = c.read8(c.operandAddr)
	return 1
}

func fetchZPY(c *CPU) int {
	c.operandAddr = uint16(c.read8(c.pc) + c.y)
	c.pc++
	c.operandValue = c.read8(c.operandAddr)
	return 1
}

func fetchABS(c *CPU) int {
	c.operandAddr = c.read16(c.pc)
	c.pc += 2
	c.operandValue = c.read8(c.operandAddr)
	return 2
}

func fetchABSX(c *CPU) int {
	base := c.read16(c.pc)
	c.pc += 2
	c.operandAddr = base + uint16(c.x)
	c.operandValue = c.read8(c.operandAddr)
	c.pageCrossed = crossesPage(base, c.operandAddr)
	return 2
}

func fetchABSY(c *CPU) int {
	base := c.read16(c.pc)
	c.pc += 2
	c.operandAddr = base + uint16(c.y)
	c.operandValue = c.read8(c.operandAddr)
	c.pageCrossed = crossesPage(base, c.operandAddr)
	return 2
}

func fetchIND(c *CPU) int {
	addr := c.read16(c.pc)
	c.pc += 2

	lo := addr
	hi := addr + 1
	if lo&0xff == 0xff { // simulate 6502 bug
		hi = (lo & 0xff00) | uint16((lo+1)&0x00ff)
	}
	c.operandAddr = uint16(c.read8(lo)) | uint16(c.read8(hi))<<8
	c.operandValue = c.read8(c.operandAddr)
	return 2
}

func fetchINDX(c *CPU) int {
	addr := uint16(c.read8(c.pc))
	addr = addr + uint16(c.x)
	c.pc++
	lo := uint16(c.read8(addr & 0x00ff))
	hi := uint16(c.read8((addr + 1) & 0x00ff))
	c.operandAddr = lo | hi<<8
	c.operandValue = c.read8(c.operandAddr)
	return 1
}

func fetchINDY(c *CPU) int {
	addr := uint16(c.read8(c.pc))
	c.pc++
	lo := uint16(c.read8(addr))
	hi := uint16(c.read8((addr + 1) & 0x00ff))
	addr = lo | hi<<8
	c.operandAddr = addr + uint16(c.y)
	c.operandValue = c.read8(c.operandAddr)
	c.pageCrossed = crossesPage(addr, c.operandAddr)
	return 1
}

func fetchREL(c *CPU) int {
	c.operandAddr = uint16(c.read8(c.pc))
	c.pc++
	if c.operandAddr&0x80 > 0 {
		c.operandAddr |= 0xff00 // add leading 1 s to save the sign
	}
	return 1
}

func fetchACC(c *CPU) int {
	c.operandValue = c.a
	return 0
}

func fetchIMP(c *CPU) int {
	return 0
}

func adc(c *CPU) {
	r16 := uint16(c.a) + uint16(c.operandValue)
	if c.getFlag(flagC) {
		r16++
	}
	r8 := uint8(r16)
	c.setFlag(flagC, r16 > 0xff)
	c.setFlagsZN(r8)
	c.setFlag(flagV, sameSign(c.a, c.operandValue) && !sameSign(c.a, r8))
	c.a = r8
	if c.pageCrossed {
		c.cycles++
	}
}

func and(c *CPU) {
	c.a &= c.operandValue
	c.setFlagsZN(c.a)
	if c.pageCrossed {
		c.cycles++
	}
}

func asl(c *CPU) {
	c.setFlag(flagC, c.operandValue&0x80 > 0)
	r8 := c.operandValue << 1
	c.setFlagsZN(r8)
	if c.addrMode == addrModeACC {
		c.a = r8
	} else {
		c.write8(c.operandAddr, r8)
	}
}

func jmpIf(c *CPU, condition bool) {
	if !condition {
		return
	}
	c.cycles++
	addr := c.pc + c.operandAddr
	if crossesPage(c.pc, addr) {
		c.cycles++
	}
	c.pc = addr
}

func bcc(c *CPU) { jmpIf(c, !c.getFlag(flagC)) }

func bcs(c *CPU) { jmpIf(c, c.getFlag(flagC)) }

func beq(c *CPU) { jmpIf(c, c.getFlag(flagZ)) }

func bit(c *CPU) {
	m := c.a & c.operandValue
	c.setFlag(flagZ, m == 0)
	c.setFlag(flagN, c.operandValue&flagN > 0)
	c.setFlag(flagV, c.operandValue&flagV > 0)
}

func bmi(c *CPU) { jmpIf(c, c.getFlag(flagN)) }

func bne(c *CPU) { jmpIf(c, !c.getFlag(flagZ)) }

func bpl(c *CPU) { jmpIf(c, !c.getFlag(flagN)) }

func brk(c *CPU) {
	c.pc++
	c.stackPush16(c.pc)
	c.stackPush8(c.p | flagB)
	c.setFlag(flagI, true)
	c.pc = c.read16(0xfffe)
}

func bvc(c *CPU) { jmpIf(c, !c.getFlag(flagV)) }

func bvs(c *CPU) { jmpIf(c, c.getFlag(flagV)) }

func clc(c *CPU) { c.setFlag(flagC, false) }

func cld(c *CPU) { c.setFlag(flagD, false) }

func cli(c *CPU) { c.setFlag(flagI, false) }

func clv(c *CPU) { c.setFlag(flagV, false) }

func cmp(c *CPU) {
	c.setFlag(flagC, c.a >= c.operandValue)
	c.setFlagsZN(c.a - c.operandValue)
	if c.pageCrossed {
		c.cycles++
	}
}

func cpx(c *CPU) {
	c.setFlag(flagC, c.x >= c.operandValue)
	c.setFlagsZN(c.x - c.operandValue)
}

func cpy(c *CPU) {
	c.setFlag(flagC, c.y >= c.operandValue)
	c.setFlagsZN(c.y - c.operandValue)
}

func dec(c *CPU) {
	r := c.operandValue - 1
	c.setFlagsZN(r)
	c.write8(c.operandAddr, r)
}

func dex(c *CPU) {
	c.x--
	c.setFlagsZN(c.x)
}

func dey(c *CPU) {
	c.y--
	c.setFlagsZN(c.y)
}

func eor(c *CPU) {
	c.a ^= c.operandValue
	c.setFlagsZN(c.a)
	if c.pageCrossed {
		c.cycles++
	}
}

func inc(c *CPU) {
	r := c.operandValue + 1
	c.setFlagsZN(r)
	c.write8(c.operandAddr, r)
}

func inx(c *CPU) {
	c.x++
	c.setFlagsZN(c.x)
}

func iny(c *CPU) {
	c.y++
	c.setFlagsZN(c.y)
}

func jmp(c *CPU) {
	c.pc = c.operandAddr
}

func jsr(c *CPU) {
	// pc incremented by 1 after the fetch,
	// so we need to decrement it
	c.pc--
	c.stackPush16(c.pc)
	c.pc = c.operandAddr
}

func lda(c *CPU) {
	c.a = c.operandValue
	c.setFlagsZN(c.a)
	if c.pageCrossed {
		c.cycles++
	}
}

func ldx(c *CPU) {
	c.x = c.operandValue
	c.setFlagsZN(c.x)
	if c.pageCrossed {
		c.cycles++
	}
}

func ldy(c *CPU) {
	c.y = c.operandValue
	c.setFlagsZN(c.y)
	if c.pageCrossed {
		c.cycles++
	}
}

func lsr(c *CPU) {
	c.setFlag(flagC, c.operandValue&0x1 > 0)
	r := c.operandValue >> 1
	c.setFlagsZN(r)
	if c.addrMode == addrModeACC {
		c.a = r
	} else {
		c.write8(c.operandAddr, r)
	}
}

func nop(c *CPU) {
	// it needs for illegal opcodes
	if c.pageCrossed {
		c.cycles++
	}
}

func ora(c *CPU) {
	c.a |= c.operandValue
	c.setFlagsZN(c.a)
	if c.pageCrossed {
		c.cycles++
	}
}

func pha(c *CPU) {
	c.stackPush8(c.a)
}

func php(c *CPU) {
	c.stackPush8(c.p | flagB)
}

func pla(c *CPU) {
	c.a = c.stackPop8()
	c.setFlagsZN(c.a)
}

func plp(c *CPU) {
	c.p = (c.stackPop8() | flagU) & ^flagB
}

func rol(c *CPU) {
	r := c.operandValue << 1
	if c.getFlag(flagC) {
		r |= 0x1
	}
	c.setFlag(flagC, c.operandValue&0x80 > 0)
	c.setFlagsZN(r)
	if c.addrMode == addrModeACC {
		c.a = r
	} else {
		c.write8(c.operandAddr, r)
	}
}

func ror(c *CPU) {
	r := c.operandValue >> 1
	if c.getFlag(flagC) {
		r |= 0x80
	}
	c.setFlag(flagC, c.operandValue&0x1 > 0)
	c.setFlagsZN(r)
	if c.addrMode == addrModeACC {
		c.a = r
	} else {
		c.write8(c.operandAddr, r)
	}
}

func rti(c *CPU) {
	c.p = (c.stackPop8() | flagU) & ^flagB
	c.pc = c.stackPop16()
}

func rts(c *CPU) {
	c.pc = c.stackPop16()
	c.pc++
}

func sbc(c *CPU) {
	c.operandValue = ^c.operandValue
	adc(c)
}

func sec(c *CPU) { c.setFlag(flagC, true) }

func sed(c *CPU) { c.setFlag(flagD, true) }

func sei(c *CPU) { c.setFlag(flagI, true) }

func sta(c *CPU) {
	c.write8(c.operandAddr, c.a)
}

func stx(c *CPU) {
	c.write8(c.operandAddr, c.x)
}

func sty(c *CPU) {
	c.write8(c.operandAddr, c.y)
}

func tax(c *CPU) {
	c.x = c.a
	c.setFlagsZN(c.x)
}

func tay(c *CPU) {
	c.y = c.a
	c.setFlagsZN(c.y)
}

func tsx(c *CPU) {
	c.x = c.sp
	c.setFlagsZN(c.x)
}

func txa(c *CPU) {
	c.a = c.x
	c.setFlagsZN(c.a)
}

func txs(c *CPU) {
	c.sp = c.x
}

func tya(c *CPU) {
	c.a = c.y
	c.setFlagsZN(c.a)
}

func lax(c *CPU) {
	c.a = c.operandValue
	c.x = c.operandValue
	c.setFlagsZN(c.a)
	if c.pageCrossed {
		c.cycles++
	}
}

func sax(c *CPU) {
	c.write8(c.operandAddr, c.a&c.x)
}

func dcp(c *CPU) {
	c.operandValue--
	c.write8(c.operandAddr, c.operandValue)
	c.pageCrossed = false
	cmp(c)
}

func isc(c *CPU) {
	c.operandValue++
	c.write8(c.operandAddr, c.operandValue)
	c.pageCrossed = false
	sbc(c)
}

func slo(c *CPU) {
	c.setFlag(flagC, c.operandValue&0x80 > 0)
	r := c.operandValue << 1
	c.write8(c.operandAddr, r)
	c.a |= r
	c.setFlagsZN(c.a)
}

func rla(c *CPU) {
	carry := c.operandValue&0x80 > 0
	r := c.operandValue << 1
	if c.getFlag(flagC) {
		r |= 0x1
	}
	c.write8(c.operandAddr, r)
	c.a &= r
	c.setFlag(flagC, carry)
	c.setFlagsZN(c.a)
}

func sre(c *CPU) {
	c.setFlag(flagC, c.operandValue&0x1 > 0)
	r := c.operandValue >> 1
	c.write8(c.operandAddr, r)
	c.a ^= r
	c.setFlagsZN(c.a)
}

func rra(c *CPU) {
	r := c.operandValue >> 1
	if c.getFlag(flagC) {
		r |= 0x80
	}
	c.setFlag(flagC, c.operandValue&0x1 > 0)
	c.operandValue = r
	c.write8(c.operandAddr, c.operandValue)
	c.pageCrossed = false
	adc(c)
}

// hlt backs the handful of officially-unused opcodes (0x02, 0x12, ...)
// that real hardware maps to a lock-up. We treat them the same as any
// other illegal opcode: count them, cost 2 cycles, don't actually stop.
func hlt(c *CPU) {
	c.illegalOpcodes++
}

func anc(c *CPU) {
	c.a &= c.operandValue
	c.setFlag(flagC, c.a&0x80 > 0)
	c.setFlagsZN(c.a)
}

func alr(c *CPU) {
	c.a &= c.operandValue
	c.setFlag(flagC, c.a&0x1 > 0)
	c.a >>= 1
	c.setFlagsZN(c.a)
}

func las(c *CPU) {
	r := c.operandValue & c.sp
	c.a = r
	c.x = r
	c.sp = r
	c.setFlagsZN(r)
	if c.pageCrossed {
		c.cycles++
	}
}

// opcodeTable is the full 6502 (plus the documented-enough illegal
// opcodes) dispatch table, indexed directly by opcode byte. It's a
// package-level value rather than something each CPU builds for itself:
// the table never varies per instance, so there's nothing instance-scoped
// for a constructor to own.
var opcodeTable = [256]instr{
	0x00: {name: "BRK", mode: addrModeIMP, fn: brk, cycles: 7},
	0x01: {name: "ORA", mode: addrModeINDX, fn: ora, cycles: 6},
	0x02: {name: "HLT", mode: addrModeIMP, fn: hlt, cycles: 2},
	0x03: {name: "SLO", mode: addrModeINDX, fn: slo, cycles: 8},
	0x04: {name: "NOP", mode: addrModeZP, fn: nop, cycles: 3},
	0x05: {name: "ORA", mode: addrModeZP, fn: ora, cycles: 3},
	0x06: {name: "ASL", mode: addrModeZP, fn: asl, cycles: 5},
	0x07: {name: "SLO", mode: addrModeZP, fn: slo, cycles: 5},
	0x08: {name: "PHP", mode: addrModeIMP, fn: php, cycles: 3},
	0x09: {name: "ORA", mode: addrModeIMM, fn: ora, cycles: 2},
	0x0a: {name: "ASL", mode: addrModeACC, fn: asl, cycles: 2},
	0x0b: {name: "ANC", mode: addrModeIMM, fn: anc, cycles: 2},
	0x0c: {name: "NOP", mode: addrModeABS, fn: nop, cycles: 4},
	0x0d: {name: "ORA", mode: addrModeABS, fn: ora, cycles: 4},
	0x0e: {name: "ASL", mode: addrModeABS, fn: asl, cycles: 6},
	0x0f: {name: "SLO", mode: addrModeABS, fn: slo, cycles: 6},
	0x10: {name: "BPL", mode: addrModeREL, fn: bpl, cycles: 2},
	0x11: {name: "ORA", mode: addrModeINDY, fn: ora, cycles: 5},
	0x12: {name: "HLT", mode: addrModeIMP, fn: hlt, cycles: 2},
	0x13: {name: "SLO", mode: addrModeINDY, fn: slo, cycles: 8},
	0x14: {name: "NOP", mode: addrModeZPX, fn: nop, cycles: 4},
	0x15: {name: "ORA", mode: addrModeZPX, fn: ora, cycles: 4},
	0x16: {name: "ASL", mode: addrModeZPX, fn: asl, cycles: 6},
	0x17: {name: "SLO", mode: addrModeZPX, fn: slo, cycles: 6},
	0x18: {name: "CLC", mode: addrModeIMP, fn: clc, cycles: 2},
	0x19: {name: "ORA", mode: addrModeABSY, fn: ora, cycles: 4},
	0x1a: {name: "NOP", mode: addrModeIMP, fn: nop, cycles: 2},
	0x1b: {name: "SLO", mode: addrModeABSY, fn: slo, cycles: 7},
	0x1c: {name: "NOP", mode: addrModeABSX, fn: nop, cycles: 4},
	0x1d: {name: "ORA", mode: addrModeABSX, fn: ora, cycles: 4},
	0x1e: {name: "ASL", mode: addrModeABSX, fn: asl, cycles: 7},
	0x1f: {name: "SLO", mode: addrModeABSX, fn: slo, cycles: 7},
	0x20: {name: "JSR", mode: addrModeABS, fn: jsr, cycles: 6},
	0x21: {name: "AND", mode: addrModeINDX, fn: and, cycles: 6},
	0x22: {name: "HLT", mode: addrModeIMP, fn: hlt, cycles: 2},
	0x23: {name: "RLA", mode: addrModeINDX, fn: rla, cycles: 8},
	0x24: {name: "BIT", mode: addrModeZP, fn: bit, cycles: 3},
	0x25: {name: "AND", mode: addrModeZP, fn: and, cycles: 3},
	0x26: {name: "ROL", mode: addrModeZP, fn: rol, cycles: 5},
	0x27: {name: "RLA", mode: addrModeZP, fn: rla, cycles: 5},
	0x28: {name: "PLP", mode: addrModeIMP, fn: plp, cycles: 4},
	0x29: {name: "AND", mode: addrModeIMM, fn: and, cycles: 2},
	0x2a: {name: "ROL", mode: addrModeACC, fn: rol, cycles: 2},
	0x2b: {name: "ANC", mode: addrModeIMM, fn: anc, cycles: 2},
	0x2c: {name: "BIT", mode: addrModeABS, fn: bit, cycles: 4},
	0x2d: {name: "AND", mode: addrModeABS, fn: and, cycles: 4},
	0x2e: {name: "ROL", mode: addrModeABS, fn: rol, cycles: 6},
	0x2f: {name: "RLA", mode: addrModeABS, fn: rla, cycles: 6},
	0x30: {name: "BMI", mode: addrModeREL, fn: bmi, cycles: 2},
	0x31: {name: "AND", mode: addrModeINDY, fn: and, cycles: 5},
	0x32: {name: "HLT", mode: addrModeIMP, fn: hlt, cycles: 2},
	0x33: {name: "RLA", mode: addrModeINDY, fn: rla, cycles: 8},
	0x34: {name: "NOP", mode: addrModeZPX, fn: nop, cycles: 4},
	0x35: {name: "AND", mode: addrModeZPX, fn: and, cycles: 4},
	0x36: {name: "ROL", mode: addrModeZPX, fn: rol, cycles: 6},
	0x37: {name: "RLA", mode: addrModeZPX, fn: rla, cycles: 6},
	0x38: {name: "SEC", mode: addrModeIMP, fn: sec, cycles: 2},
	0x39: {name: "AND", mode: addrModeABSY, fn: and, cycles: 4},
	0x3a: {name: "NOP", mode: addrModeIMP, fn: nop, cycles: 2},
	0x3b: {name: "RLA", mode: addrModeABSY, fn: rla, cycles: 7},
	0x3c: {name: "NOP", mode: addrModeABSX, fn: nop, cycles: 4},
	0x3d: {name: "AND", mode: addrModeABSX, fn: and, cycles: 4},
	0x3e: {name: "ROL", mode: addrModeABSX, fn: rol, cycles: 7},
	0x3f: {name: "RLA", mode: addrModeABSX, fn: rla, cycles: 7},
	0x40: {name: "RTI", mode: addrModeIMP, fn: rti, cycles: 6},
	0x41: {name: "EOR", mode: addrModeINDX, fn: eor, cycles: 6},
	0x42: {name: "HLT", mode: addrModeIMP, fn: hlt, cycles: 2},
	0x43: {name: "SRE", mode: addrModeINDX, fn: sre, cycles: 8},
	0x44: {name: "NOP", mode: addrModeZP, fn: nop, cycles: 3},
	0x45: {name: "EOR", mode: addrModeZP, fn: eor, cycles: 3},
	0x46: {name: "LSR", mode: addrModeZP, fn: lsr, cycles: 5},
	0x47: {name: "SRE", mode: addrModeZP, fn: sre, cycles: 5},
	0x48: {name: "PHA", mode: addrModeIMP, fn: pha, cycles: 3},
	0x49: {name: "EOR", mode: addrModeIMM, fn: eor, cycles: 2},
	0x4a: {name: "LSR", mode: addrModeACC, fn: lsr, cycles: 2},
	0x4b: {name: "ALR", mode: addrModeIMM, fn: alr, cycles: 2},
	0x4c: {name: "JMP", mode: addrModeABS, fn: jmp, cycles: 3},
	0x4d: {name: "EOR", mode: addrModeABS, fn: eor, cycles: 4},
	0x4e: {name: "LSR", mode: addrModeABS, fn: lsr, cycles: 6},
	0x4f: {name: "SRE", mode: addrModeABS, fn: sre, cycles: 6},
	0x50: {name: "BVC", mode: addrModeREL, fn: bvc, cycles: 2},
	0x51: {name: "EOR", mode: addrModeINDY, fn: eor, cycles: 5},
	0x52: {name: "HLT", mode: addrModeIMP, fn: hlt, cycles: 2},
	0x53: {name: "SRE", mode: addrModeINDY, fn: sre, cycles: 8},
	0x54: {name: "NOP", mode: addrModeZPX, fn: nop, cycles: 4},
	0x55: {name: "EOR", mode: addrModeZPX, fn: eor, cycles: 4},
	0x56: {name: "LSR", mode: addrModeZPX, fn: lsr, cycles: 6},
	0x57: {name: "SRE", mode: addrModeZPX, fn: sre, cycles: 6},
	0x58: {name: "CLI", mode: addrModeIMP, fn: cli, cycles: 2},
	0x59: {name: "EOR", mode: addrModeABSY, fn: eor, cycles: 4},
	0x5a: {name: "NOP", mode: addrModeIMP, fn: nop, cycles: 2},
	0x5b: {name: "SRE", mode: addrModeABSY, fn: sre, cycles: 7},
	0x5c: {name: "NOP", mode: addrModeABSX, fn: nop, cycles: 4},
	0x5d: {name: "EOR", mode: addrModeABSX, fn: eor, cycles: 4},
	0x5e: {name: "LSR", mode: addrModeABSX, fn: lsr, cycles: 7},
	0x5f: {name: "SRE", mode: addrModeABSX, fn: sre, cycles: 7},
	0x60: {name: "RTS", mode: addrModeIMP, fn: rts, cycles: 6},
	0x61: {name: "ADC", mode: addrModeINDX, fn: adc, cycles: 6},
	0x62: {name: "HLT", mode: addrModeIMP, fn: hlt, cycles: 2},
	0x63: {name: "RRA", mode: addrModeINDX, fn: rra, cycles: 8},
	0x64: {name: "NOP", mode: addrModeZP, fn: nop, cycles: 3},
	0x65: {name: "ADC", mode: addrModeZP, fn: adc, cycles: 3},
	0x66: {name: "ROR", mode: addrModeZP, fn: ror, cycles: 5},
	0x67: {name: "RRA", mode: addrModeZP, fn: rra, cycles: 5},
	0x68: {name: "PLA", mode: addrModeIMP, fn: pla, cycles: 4},
	0x69: {name: "ADC", mode: addrModeIMM, fn: adc, cycles: 2},
	0x6a: {name: "ROR", mode: addrModeACC, fn: ror, cycles: 2},
	0x6c: {name: "JMP", mode: addrModeIND, fn: jmp, cycles: 5},
	0x6d: {name: "ADC", mode: addrModeABS, fn: adc, cycles: 4},
	0x6e: {name: "ROR", mode: addrModeABS, fn: ror, cycles: 6},
	0x6f: {name: "RRA", mode: addrModeABS, fn: rra, cycles: 6},
	0x70: {name: "BVS", mode: addrModeREL, fn: bvs, cycles: 2},
	0x71: {name: "ADC", mode: addrModeINDY, fn: adc, cycles: 5},
	0x72: {name: "HLT", mode: addrModeIMP, fn: hlt, cycles: 2},
	0x73: {name: "RRA", mode: addrModeINDY, fn: rra, cycles: 8},
	0x74: {name: "NOP", mode: addrModeZPX, fn: nop, cycles: 4},
	0x75: {name: "ADC", mode: addrModeZPX, fn: adc, cycles: 4},
	0x76: {name: "ROR", mode: addrModeZPX, fn: ror, cycles: 6},
	0x77: {name: "RRA", mode: addrModeZPX, fn: rra, cycles: 6},
	0x78: {name: "SEI", mode: addrModeIMP, fn: sei, cycles: 2},
	0x79: {name: "ADC", mode: addrModeABSY, fn: adc, cycles: 4},
	0x7a: {name: "NOP", mode: addrModeIMP, fn: nop, cycles: 2},
	0x7b: {name: "RRA", mode: addrModeABSY, fn: rra, cycles: 7},
	0x7c: {name: "NOP", mode: addrModeABSX, fn: nop, cycles: 4},
	0x7d: {name: "ADC", mode: addrModeABSX, fn: adc, cycles: 4},
	0x7e: {name: "ROR", mode: addrModeABSX, fn: ror, cycles: 7},
	0x7f: {name: "RRA", mode: addrModeABSX, fn: rra, cycles: 7},
	0x80: {name: "NOP", mode: addrModeREL, fn: nop, cycles: 2},
	0x81: {name: "STA", mode: addrModeINDX, fn: sta, cycles: 6},
	0x82: {name: "NOP", mode: addrModeIMM, fn: nop, cycles: 2},
	0x83: {name: "SAX", mode: addrModeINDX, fn: sax, cycles: 6},
	0x84: {name: "STY", mode: addrModeZP, fn: sty, cycles: 3},
	0x85: {name: "STA", mode: addrModeZP, fn: sta, cycles: 3},
	0x86: {name: "STX", mode: addrModeZP, fn: stx, cycles: 3},
	0x87: {name: "SAX", mode: addrModeZP, fn: sax, cycles: 3},
	0x88: {name: "DEY", mode: addrModeIMP, fn: dey, cycles: 2},
	0x89: {name: "NOP", mode: addrModeIMM, fn: nop, cycles: 2},
	0x8a: {name: "TXA", mode: addrModeIMP, fn: txa, cycles: 2},
	0x8c: {name: "STY", mode: addrModeABS, fn: sty, cycles: 4},
	0x8d: {name: "STA", mode: addrModeABS, fn: sta, cycles: 4},
	0x8e: {name: "STX", mode: addrModeABS, fn: stx, cycles: 4},
	0x8f: {name: "SAX", mode: addrModeABS, fn: sax, cycles: 4},
	0x90: {name: "BCC", mode: addrModeREL, fn: bcc, cycles: 2},
	0x91: {name: "STA", mode: addrModeINDY, fn: sta, cycles: 6},
	0x92: {name: "HLT", mode: addrModeIMP, fn: hlt, cycles: 2},
	0x94: {name: "STY", mode: addrModeZPX, fn: sty, cycles: 4},
	0x95: {name: "STA", mode: addrModeZPX, fn: sta, cycles: 4},
	0x96: {name: "STX", mode: addrModeZPY, fn: stx, cycles: 4},
	0x97: {name: "SAX", mode: addrModeZPY, fn: sax, cycles: 4},
	0x98: {name: "TYA", mode: addrModeIMP, fn: tya, cycles: 2},
	0x99: {name: "STA", mode: addrModeABSY, fn: sta, cycles: 5},
	0x9a: {name: "TXS", mode: addrModeIMP, fn: txs, cycles: 2},
	0x9d: {name: "STA", mode: addrModeABSX, fn: sta, cycles: 5},
	0xa0: {name: "LDY", mode: addrModeIMM, fn: ldy, cycles: 2},
	0xa1: {name: "LDA", mode: addrModeINDX, fn: lda, cycles: 6},
	0xa2: {name: "LDX", mode: addrModeIMM, fn: ldx, cycles: 2},
	0xa3: {name: "LAX", mode: addrModeINDX, fn: lax, cycles: 6},
	0xa4: {name: "LDY", mode: addrModeZP, fn: ldy, cycles: 3},
	0xa5: {name: "LDA", mode: addrModeZP, fn: lda, cycles: 3},
	0xa6: {name: "LDX", mode: addrModeZP, fn: ldx, cycles: 3},
	0xa7: {name: "LAX", mode: addrModeZP, fn: lax, cycles: 3},
	0xa8: {name: "TAY", mode: addrModeIMP, fn: tay, cycles: 2},
	0xa9: {name: "LDA", mode: addrModeIMM, fn: lda, cycles: 2},
	0xaa: {name: "TAX", mode: addrModeIMP, fn: tax, cycles: 2},
	0xac: {name: "LDY", mode: addrModeABS, fn: ldy, cycles: 4},
	0xad: {name: "LDA", mode: addrModeABS, fn: lda, cycles: 4},
	0xae: {name: "LDX", mode: addrModeABS, fn: ldx, cycles: 4},
	0xaf: {name: "LAX", mode: addrModeABS, fn: lax, cycles: 4},
	0xb0: {name: "BCS", mode: addrModeREL, fn: bcs, cycles: 2},
	0xb1: {name: "LDA", mode: addrModeINDY, fn: lda, cycles: 5},
	0xb2: {name: "HLT", mode: addrModeIMP, fn: hlt, cycles: 2},
	0xb3: {name: "LAX", mode: addrModeINDY, fn: lax, cycles: 5},
	0xb4: {name: "LDY", mode: addrModeZPX, fn: ldy, cycles: 4},
	0xb5: {name: "LDA", mode: addrModeZPX, fn: lda, cycles: 4},
	0xb6: {name: "LDX", mode: addrModeZPY, fn: ldx, cycles: 4},
	0xb7: {name: "LAX", mode: addrModeZPY, fn: lax, cycles: 4},
	0xb8: {name: "CLV", mode: addrModeIMP, fn: clv, cycles: 2},
	0xb9: {name: "LDA", mode: addrModeABSY, fn: lda, cycles: 4},
	0xba: {name: "TSX", mode: addrModeIMP, fn: tsx, cycles: 2},
	0xbb: {name: "LAS", mode: addrModeABSY, fn: las, cycles: 4},
	0xbc: {name: "LDY", mode: addrModeABSX, fn: ldy, cycles: 4},
	0xbd: {name: "LDA", mode: addrModeABSX, fn: lda, cycles: 4},
	0xbe: {name: "LDX", mode: addrModeABSY, fn: ldx, cycles: 4},
	0xbf: {name: "LAX", mode: addrModeABSY, fn: lax, cycles: 4},
	0xc0: {name: "CPY", mode: addrModeIMM, fn: cpy, cycles: 2},
	0xc1: {name: "CMP", mode: addrModeINDX, fn: cmp, cycles: 6},
	0xc2: {name: "NOP", mode: addrModeIMM, fn: nop, cycles: 2},
	0xc3: {name: "DCP", mode: addrModeINDX, fn: dcp, cycles: 8},
	0xc4: {name: "CPY", mode: addrModeZP, fn: cpy, cycles: 3},
	0xc5: {name: "CMP", mode: addrModeZP, fn: cmp, cycles: 3},
	0xc6: {name: "DEC", mode: addrModeZP, fn: dec, cycles: 5},
	0xc7: {name: "DCP", mode: addrModeZP, fn: dcp, cycles: 5},
	0xc8: {name: "INY", mode: addrModeIMP, fn: iny, cycles: 2},
	0xc9: {name: "CMP", mode: addrModeIMM, fn: cmp, cycles: 2},
	0xca: {name: "DEX", mode: addrModeIMP, fn: dex, cycles: 2},
	0xcc: {name: "CPY", mode: addrModeABS, fn: cpy, cycles: 4},
	0xcd: {name: "CMP", mode: addrModeABS, fn: cmp, cycles: 4},
	0xce: {name: "DEC", mode: addrModeABS, fn: dec, cycles: 6},
	0xcf: {name: "DCP", mode: addrModeABS, fn: dcp, cycles: 6},
	0xd0: {name: "BNE", mode: addrModeREL, fn: bne, cycles: 2},
	0xd1: {name: "CMP", mode: addrModeINDY, fn: cmp, cycles: 5},
	0xd2: {name: "HLT", mode: addrModeIMP, fn: hlt, cycles: 2},
	0xd3: {name: "DCP", mode: addrModeINDY, fn: dcp, cycles: 8},
	0xd4: {name: "NOP", mode: addrModeZPX, fn: nop, cycles: 4},
	0xd5: {name: "CMP", mode: addrModeZPX, fn: cmp, cycles: 4},
	0xd6: {name: "DEC", mode: addrModeZPX, fn: dec, cycles: 6},
	0xd7: {name: "DCP", mode: addrModeZPX, fn: dcp, cycles: 6},
	0xd8: {name: "CLD", mode: addrModeIMP, fn: cld, cycles: 2},
	0xd9: {name: "CMP", mode: addrModeABSY, fn: cmp, cycles: 4},
	0xda: {name: "NOP", mode: addrModeIMP, fn: nop, cycles: 2},
	0xdb: {name: "DCP", mode: addrModeABSY, fn: dcp, cycles: 7},
	0xdc: {name: "NOP", mode: addrModeABSX, fn: nop, cycles: 4},
	0xdd: {name: "CMP", mode: addrModeABSX, fn: cmp, cycles: 4},
	0xde: {name: "DEC", mode: addrModeABSX, fn: dec, cycles: 7},
	0xdf: {name: "DCP", mode: addrModeABSX, fn: dcp, cycles: 7},
	0xe0: {name: "CPX", mode: addrModeIMM, fn: cpx, cycles: 2},
	0xe1: {name: "SBC", mode: addrModeINDX, fn: sbc, cycles: 6},
	0xe2: {name: "NOP", mode: addrModeIMM, fn: nop, cycles: 2},
	0xe3: {name: "ISC", mode: addrModeINDX, fn: isc, cycles: 8},
	0xe4: {name: "CPX", mode: addrModeZP, fn: cpx, cycles: 3},
	0xe5: {name: "SBC", mode: addrModeZP, fn: sbc, cycles: 3},
	0xe6: {name: "INC", mode: addrModeZP, fn: inc, cycles: 5},
	0xe7: {name: "ISC", mode: addrModeZP, fn: isc, cycles: 5},
	0xe8: {name: "INX", mode: addrModeIMP, fn: inx, cycles: 2},
	0xe9: {name: "SBC", mode: addrModeIMM, fn: sbc, cycles: 2},
	0xea: {name: "NOP", mode: addrModeIMP, fn: nop, cycles: 2},
	0xeb: {name: "SBC", mode: addrModeIMM, fn: sbc, cycles: 2},
	0xec: {name: "CPX", mode: addrModeABS, fn: cpx, cycles: 4},
	0xed: {name: "SBC", mode: addrModeABS, fn: sbc, cycles: 4},
	0xee: {name: "INC", mode: addrModeABS, fn: inc, cycles: 6},
	0xef: {name: "ISC", mode: addrModeABS, fn: isc, cycles: 6},
	0xf0: {name: "BEQ", mode: addrModeREL, fn: beq, cycles: 2},
	0xf1: {name: "SBC", mode: addrModeINDY, fn: sbc, cycles: 5},
	0xf2: {name: "HLT", mode: addrModeIMP, fn: hlt, cycles: 2},
	0xf3: {name: "ISC", mode: addrModeINDY, fn: isc, cycles: 8},
	0xf4: {name: "NOP", mode: addrModeZPX, fn: nop, cycles: 4},
	0xf5: {name: "SBC", mode: addrModeZPX, fn: sbc, cycles: 4},
	0xf6: {name: "INC", mode: addrModeZPX, fn: inc, cycles: 6},
	0xf7: {name: "ISC", mode: addrModeZPX, fn: isc, cycles: 6},
	0xf8: {name: "SED", mode: addrModeIMP, fn: sed, cycles: 2},
	0xf9: {name: "SBC", mode: addrModeABSY, fn: sbc, cycles: 4},
	0xfa: {name: "NOP", mode: addrModeIMP, fn: nop, cycles: 2},
	0xfb: {name: "ISC", mode: addrModeABSY, fn: isc, cycles: 7},
	0xfc: {name: "NOP", mode: addrModeABSX, fn: nop, cycles: 4},
	0xfd: {name: "SBC", mode: addrModeABSX, fn: sbc, cycles: 4},
	0xfe: {name: "INC", mode: addrModeABSX, fn: inc, cycles: 7},
	0xff: {name: "ISC", mode: addrModeABSX, fn: isc, cycles: 7},
}

func opcodeIsSupported(opcode byte) bool {
	return opcodeTable[opcode].fn != nil
}
