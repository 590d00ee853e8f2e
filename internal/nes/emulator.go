package nes

import "io"

// FrameStats summarizes one RunFrame call for host diagnostics/HUDs.
type FrameStats struct {
	CPUCycles       uint64
	PPUCycles       uint64
	FramesCompleted uint32
	FrameIndex      uint64
	IllegalOpcodes  uint32
}

// Emulator is the scheduler: it owns the whole arena (CPU, PPU, APU, Bus,
// Cartridge, Controllers) and is the only thing a host talks to. It is
// single-threaded and cooperative — RunFrame/StepInstruction never
// reenter, and sinks are called synchronously from inside them.
type Emulator struct {
	bus    *Bus
	region Region

	videoSink func(frame *[256 * 240]uint32)
	audioSink func(samples []float32)

	nmiLinePrev bool
	frameIndex  uint64

	paused bool
}

// New constructs an Emulator with no cartridge loaded. sampleRate
// configures the APU's internal resampler. audioBatch is accepted but
// not used: each StepInstruction call hands the audio sink whatever
// samples accumulated during it, with no fixed batch size.
func New(region Region, sampleRate, audioBatch int) *Emulator {
	e := &Emulator{
		bus:    NewBus(region, sampleRate),
		region: region,
	}
	_ = audioBatch // StepInstruction drains whatever accumulated
	return e
}

// LoadROM parses an iNES image and, on success, makes it the active
// cartridge and resets the machine. On failure the previous cartridge
// (if any) is left untouched.
func (e *Emulator) LoadROM(r io.Reader) error {
	cart, err := NewCartFromReader(r)
	if err != nil {
		return err
	}
	e.bus.LoadCart(cart)
	e.nmiLinePrev = false
	e.frameIndex = 0
	return nil
}

// Reset performs a full power-cycle style reset.
func (e *Emulator) Reset() {
	e.bus.Reset()
	e.nmiLinePrev = false
}

// SoftReset pulses the CPU's reset line without touching PPU/APU/cart
// state, matching a console's physical reset button.
func (e *Emulator) SoftReset() {
	e.bus.cpu.Reset()
}

func (e *Emulator) SetVideoSink(fn func(frame *[256 * 240]uint32)) {
	e.videoSink = fn
}

func (e *Emulator) SetAudioSink(fn func(samples []float32)) {
	e.audioSink = fn
}

func (e *Emulator) SetButton(port int, button Button, pressed bool) {
	if port < 0 || port > 1 {
		return
	}
	e.bus.ctrl[port].SetButton(button, pressed)
}

// Stop is a no-op hook reserved for hosts that need an explicit teardown
// point (closing audio devices, etc); the Emulator itself holds no
// background goroutines or open resources to release.
func (e *Emulator) Stop() {}

// TogglePause flips the paused flag. RunFrame is a no-op while paused;
// hosts single-step with StepInstruction instead.
func (e *Emulator) TogglePause() {
	e.paused = !e.paused
}

// Paused reports whether RunFrame currently does nothing.
func (e *Emulator) Paused() bool {
	return e.paused
}

// DebugInfo is a snapshot of CPU registers for host debug overlays.
type DebugInfo struct {
	A, X, Y, P, SP uint8
	PC             uint16
}

// StatusString renders the P register as the letters NVUBDIZC, upper-case when set and lower-case when clear.
func (d DebugInfo) StatusString() string {
	flags := [8]struct {
		bit  uint8
		name byte
	}{
		{flagN, 'N'}, {flagV, 'V'}, {flagU, 'U'}, {flagB, 'B'},
		{flagD, 'D'}, {flagI, 'I'}, {flagZ, 'Z'}, {flagC, 'C'},
	}
	buf := make([]byte, 8)
	for i, f := range flags {
		if d.P&f.bit != 0 {
			buf[i] = f.name
		} else {
			buf[i] = f.name - 'A' + 'a'
		}
	}
	return string(buf)
}

// DebugInfo reports the current CPU register file for host overlays.
func (e *Emulator) DebugInfo() DebugInfo {
	c := e.bus.cpu
	return DebugInfo{A: c.a, X: c.x, Y: c.y, P: c.p, SP: c.sp, PC: c.pc}
}

// Disassemble returns a best-effort static disassembly of the whole
// address space, keyed by address, for host debug overlays.
func (e *Emulator) Disassemble() map[uint16]string {
	return e.bus.Disassemble()
}

// GetColorFromPalette exposes a PPU palette entry for host debug overlays.
func (e *Emulator) GetColorFromPalette(palette, index uint8) uint32 {
	return e.bus.ppu.GetColorFromPalette(palette, index)
}

// PatternTable renders a CHR pattern table through the given palette for
// host debug overlays.
func (e *Emulator) PatternTable(palette, table uint8) [128 * 128]uint32 {
	return e.bus.ppu.PatternTable(palette, table)
}

// IllegalOpcodeCount reports how many illegal/unmapped opcodes have been
// executed since power-on, for host diagnostics.
func (e *Emulator) IllegalOpcodeCount() uint32 {
	return e.bus.cpu.IllegalOpcodeCount()
}

// StepInstruction runs exactly one CPU instruction plus any interrupt
// servicing and DMA stalls it triggers, ticks the PPU 3x and the APU 1x
// per CPU cycle spent, and returns the total CPU cycles charged. This is
// the core scheduler primitive; RunFrame just calls it in a loop. The
// return is wider than the CPU's own per-instruction uint8 because OAM
// DMA/DMC fetches can stall the CPU for several hundred extra cycles.
func (e *Emulator) StepInstruction() uint16 {
	cycles := uint16(e.bus.cpu.Step())
	cycles += e.bus.TakeDMACycles()

	for i := uint16(0); i < cycles; i++ {
		// The frame can wrap on any of the three dots, not only the last.
		ppuFrame := e.bus.ppu.frame
		e.bus.ppu.Step()
		e.bus.ppu.Step()
		e.bus.ppu.Step()
		e.bus.apu.Step()
		e.bus.serviceDMC()

		nmiLine := e.bus.ppu.NMILine()
		if nmiLine && !e.nmiLinePrev {
			// NMI()'s 7 service cycles fold straight into cycles, so the
			// loop bound grows and the remaining iterations tick the PPU/APU
			// through them same as any other cycle.
			cycles += uint16(e.bus.cpu.NMI())
		}
		e.nmiLinePrev = nmiLine

		if e.bus.ppu.frame != ppuFrame {
			e.frameIndex++
			if e.videoSink != nil {
				e.videoSink(e.bus.ppu.FrameBuffer())
			}
		}
	}

	irqLine := e.bus.apu.IRQLine() || (e.bus.cart != nil && e.bus.cart.IrqLine())
	if irqLine {
		// IRQ() is sampled once per instruction, after the main tick loop
		// above has already run out, so its cycles need their own
		// follow-up tick rather than extending that loop's bound.
		irqCycles := uint16(e.bus.cpu.IRQ())
		cycles += irqCycles
		for i := uint16(0); i < irqCycles; i++ {
			ppuFrame := e.bus.ppu.frame
			e.bus.ppu.Step()
			e.bus.ppu.Step()
			e.bus.ppu.Step()
			e.bus.apu.Step()
			e.bus.serviceDMC()

			if e.bus.ppu.frame != ppuFrame {
				e.frameIndex++
				if e.videoSink != nil {
					e.videoSink(e.bus.ppu.FrameBuffer())
				}
			}
		}
	}

	if samples := e.bus.apu.DrainSamples(); len(samples) > 0 && e.audioSink != nil {
		e.audioSink(samples)
	}

	return cycles
}

// RunFrame steps the machine until a PPU frame completes and returns
// diagnostics for that frame. Intended to be called once per host
// display refresh.
func (e *Emulator) RunFrame() FrameStats {
	if e.paused {
		return FrameStats{FrameIndex: e.frameIndex, IllegalOpcodes: e.bus.cpu.IllegalOpcodeCount()}
	}
	startFrame := e.frameIndex
	var cpuCycles, ppuCycles uint64
	for e.frameIndex == startFrame {
		c := e.StepInstruction()
		cpuCycles += uint64(c)
		ppuCycles += uint64(c) * 3
	}
	return FrameStats{
		CPUCycles:       cpuCycles,
		PPUCycles:       ppuCycles,
		FramesCompleted: 1,
		FrameIndex:      e.frameIndex,
		IllegalOpcodes:  e.bus.cpu.IllegalOpcodeCount(),
	}
}
