package nes

import "log"

// Bus decodes the CPU's flat 16-bit address space into RAM, the PPU's
// register window, the APU/IO window, the two controller ports and the
// cartridge, exactly per the NES memory map. It also owns OAM DMA: a
// write to $4014 copies a 256-byte page into PPU OAM and stalls the CPU
// for 513 or 514 cycles depending on timing parity.
type Bus struct {
	cpu  *CPU
	ppu  *PPU
	apu  *APU
	ram  *RAM
	cart *Cart
	ctrl [2]*Controller

	dmaCycles uint16
}

func NewBus(region Region, sampleRate int) *Bus {
	b := &Bus{
		ram:  NewRAM(),
		ppu:  NewPPU(),
		apu:  NewAPU(sampleRate, region),
		ctrl: [2]*Controller{NewController(), NewController()},
	}
	b.ppu.region = region
	b.cpu = NewCPU(b)
	return b
}

func (b *Bus) LoadCart(cart *Cart) {
	b.cart = cart
	b.ppu.setCart(cart)
	b.apu.Reset()
	b.ppu.Reset()
	b.ctrl[0].Reset()
	b.ctrl[1].Reset()
	b.cpu.Reset()
}

func (b *Bus) Reset() {
	b.apu.Reset()
	b.ppu.Reset()
	b.ctrl[0].Reset()
	b.ctrl[1].Reset()
	b.cpu.Reset()
}

// TakeDMACycles returns and clears the CPU-stall cycles accumulated by
// OAM DMA and DMC sample fetches since the last call.
func (b *Bus) TakeDMACycles() uint16 {
	c := b.dmaCycles
	b.dmaCycles = 0
	return c
}

func (b *Bus) oamDMA(page uint8) {
	var buf [256]uint8
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		buf[i] = b.Read8(base + uint16(i))
	}
	b.ppu.WriteOAMDMA(buf)

	// oamDMA runs from inside the triggering instruction's fn(), before
	// CPU.Step folds that instruction's cycles into totalCycles. The
	// $4014 write itself lands on the instruction's last cycle (e.g.
	// STA absolute's 4th of 4), so the cycle count live at the moment of
	// the write is totalCycles-so-far plus all but that final cycle.
	cycleAtWrite := b.cpu.totalCycles + uint64(b.cpu.cycles) - 1
	cost := uint16(513)
	if cycleAtWrite%2 == 1 {
		cost = 514
	}
	b.dmaCycles += cost
}

// serviceDMC fetches the next DMC sample byte directly off the CPU bus
// and stalls the CPU by 4 cycles, as real hardware does.
func (b *Bus) serviceDMC() {
	if !b.apu.dmc.requestDMA {
		return
	}
	b.apu.dmc.requestDMA = false
	sample := b.Read8(b.apu.dmc.curAddr)
	b.apu.dmc.DeliverSample(sample)
	b.dmaCycles += 4
}

// Read8 implements ReadWriter for the CPU-visible address space:
//
//	$0000-$07FF: 2 KB of internal RAM
//	$0800-$1FFF: mirrors of $0000-$07FF
//	$2000-$2007: PPU registers
//	$2008-$3FFF: mirrors of $2000-$2007 (every 8 bytes)
//	$4000-$4017: APU and I/O registers
//	$4018-$401F: APU/IO test space, normally disabled
//	$4020-$FFFF: cartridge space (PRG-ROM, PRG-RAM, mapper registers)
func (b *Bus) Read8(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram.Read8(addr)
	case addr < 0x4000:
		return b.ppu.readRegister(uint8(addr & 0x7))
	case addr == 0x4015:
		return b.apu.readStatus()
	case addr == 0x4016:
		return b.ctrl[0].Read()
	case addr == 0x4017:
		return b.ctrl[1].Read()
	case addr < 0x4020:
		return 0
	case addr <= 0xFFFF:
		if b.cart == nil {
			return 0
		}
		return b.cart.Read8(addr)
	}
	log.Println("bus: unhandled read8 at address", addr)
	return 0
}

func (b *Bus) Write8(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		b.ram.Write8(addr, data)
	case addr < 0x4000:
		b.ppu.writeRegister(uint8(addr&0x7), data)
	case addr == 0x4014:
		b.oamDMA(data)
	case addr == 0x4016:
		b.ctrl[0].Write(data)
		b.ctrl[1].Write(data)
	case addr < 0x4018:
		b.apu.writeRegister(addr, data)
	case addr < 0x4020:
		// disabled APU/IO test registers
	case addr <= 0xFFFF:
		if b.cart != nil {
			b.cart.Write8(addr, data)
		}
	default:
		log.Println("bus: unhandled write8 at address", addr)
	}
}

// Disassemble exposes the CPU's static disassembly for host debug views.
func (b *Bus) Disassemble() map[uint16]string {
	return b.cpu.Disassemble()
}
