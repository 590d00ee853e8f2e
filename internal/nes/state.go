package nes

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

const stateVersion = 1

// State is a versioned, opaque snapshot of CPU/PPU/APU/Bus/Controller
// state, produced by Emulator.SaveState and consumed by LoadState. The
// encoding is gob, matching the corpus's preference for stdlib
// encoding/* packages when no dedicated serialization library is
// already in play.
type State struct {
	Version    int
	Region     Region
	FrameIndex uint64
	Snapshot   []byte
}

type cpuSnapshot struct {
	A, X, Y, P, SP uint8
	PC             uint16
	TotalCycles    uint64
	IllegalOpcodes uint32
}

type ppuSnapshot struct {
	Ctrl, Mask, Status, OAMAddr uint8
	V, T                        uint16
	X                           uint8
	W                           bool
	ReadBuffer, BusLatch        uint8
	Nametables                  [0x800]uint8
	PaletteRAM                  [0x20]uint8
	Cycle, Scanline             int
	Frame                       uint64
}

type apuSnapshot struct {
	Pulse1, Pulse2 pulseChannel
	Triangle       triangleChannel
	Noise          noiseChannel
	DMC            dmcChannel
	FrameCounter   uint32
	FiveStepMode   bool
	IrqInhibit     bool
	FrameIRQ       bool
}

type ctrlSnapshot struct {
	Buttons [8]bool
	Index   uint8
	Strobe  uint8
}

type stateBody struct {
	CPU     cpuSnapshot
	PPU     ppuSnapshot
	APU     apuSnapshot
	RAM     [ramSizeBytes]uint8
	PRGRAM  [prgRAMSizeBytes]uint8
	MapperBank uint8
	Ctrl    [2]ctrlSnapshot
}

// SaveState captures the full machine state needed to resume execution
// bit-for-bit. Mapper bank state beyond Mapper2's single register is not
// captured since the base tree only ships NROM/UxROM.
func (e *Emulator) SaveState() (State, error) {
	b := e.bus

	var mapperBank uint8
	if m2, ok := b.cart.mapper.(*Mapper2); ok {
		mapperBank = m2.bank
	}

	body := stateBody{
		CPU: cpuSnapshot{
			A: b.cpu.a, X: b.cpu.x, Y: b.cpu.y, P: b.cpu.p, SP: b.cpu.sp,
			PC: b.cpu.pc, TotalCycles: b.cpu.totalCycles,
			IllegalOpcodes: b.cpu.illegalOpcodes,
		},
		PPU: ppuSnapshot{
			Ctrl: b.ppu.ctrl, Mask: b.ppu.mask, Status: b.ppu.status, OAMAddr: b.ppu.oamAddr,
			V: b.ppu.v, T: b.ppu.t, X: b.ppu.x, W: b.ppu.w,
			ReadBuffer: b.ppu.readBuffer, BusLatch: b.ppu.busLatch,
			Nametables: b.ppu.nametables, PaletteRAM: b.ppu.paletteRAM,
			Cycle: b.ppu.cycle, Scanline: b.ppu.scanline, Frame: b.ppu.frame,
		},
		APU: apuSnapshot{
			Pulse1: b.apu.pulse1, Pulse2: b.apu.pulse2, Triangle: b.apu.triangle,
			Noise: b.apu.noise, DMC: b.apu.dmc, FrameCounter: b.apu.frameCounter,
			FiveStepMode: b.apu.fiveStepMode, IrqInhibit: b.apu.irqInhibit, FrameIRQ: b.apu.frameIRQ,
		},
		RAM:        b.ram.bytes,
		PRGRAM:     b.cart.prgRAM,
		MapperBank: mapperBank,
	}
	for i, c := range b.ctrl {
		body.Ctrl[i] = ctrlSnapshot{Buttons: c.buttons, Index: c.index, Strobe: c.strobe}
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(body); err != nil {
		return State{}, fmt.Errorf("encode state: %w", err)
	}

	return State{
		Version:    stateVersion,
		Region:     e.region,
		FrameIndex: e.frameIndex,
		Snapshot:   buf.Bytes(),
	}, nil
}

// LoadState restores a previously captured snapshot. On any mismatch
// (wrong version, wrong region, corrupt payload) it returns
// ErrStateInvalid and leaves the emulator's state unchanged.
func (e *Emulator) LoadState(s State) error {
	if s.Version != stateVersion || s.Region != e.region {
		return ErrStateInvalid
	}
	var body stateBody
	if err := gob.NewDecoder(bytes.NewReader(s.Snapshot)).Decode(&body); err != nil {
		return fmt.Errorf("%w: %s", ErrStateInvalid, err)
	}
	if e.bus.cart == nil {
		return ErrStateInvalid
	}

	b := e.bus
	b.cpu.a, b.cpu.x, b.cpu.y, b.cpu.p, b.cpu.sp = body.CPU.A, body.CPU.X, body.CPU.Y, body.CPU.P, body.CPU.SP
	b.cpu.pc = body.CPU.PC
	b.cpu.totalCycles = body.CPU.TotalCycles
	b.cpu.illegalOpcodes = body.CPU.IllegalOpcodes

	b.ppu.ctrl, b.ppu.mask, b.ppu.status, b.ppu.oamAddr = body.PPU.Ctrl, body.PPU.Mask, body.PPU.Status, body.PPU.OAMAddr
	b.ppu.v, b.ppu.t, b.ppu.x, b.ppu.w = body.PPU.V, body.PPU.T, body.PPU.X, body.PPU.W
	b.ppu.readBuffer, b.ppu.busLatch = body.PPU.ReadBuffer, body.PPU.BusLatch
	b.ppu.nametables, b.ppu.paletteRAM = body.PPU.Nametables, body.PPU.PaletteRAM
	b.ppu.cycle, b.ppu.scanline, b.ppu.frame = body.PPU.Cycle, body.PPU.Scanline, body.PPU.Frame

	b.apu.pulse1, b.apu.pulse2, b.apu.triangle = body.APU.Pulse1, body.APU.Pulse2, body.APU.Triangle
	b.apu.noise, b.apu.dmc = body.APU.Noise, body.APU.DMC
	b.apu.frameCounter, b.apu.fiveStepMode = body.APU.FrameCounter, body.APU.FiveStepMode
	b.apu.irqInhibit, b.apu.frameIRQ = body.APU.IrqInhibit, body.APU.FrameIRQ

	b.ram.bytes = body.RAM
	b.cart.prgRAM = body.PRGRAM
	if m2, ok := b.cart.mapper.(*Mapper2); ok {
		m2.bank = body.MapperBank
	}
	for i, c := range body.Ctrl {
		b.ctrl[i].buttons, b.ctrl[i].index, b.ctrl[i].strobe = c.Buttons, c.Index, c.Strobe
	}

	e.frameIndex = s.FrameIndex
	e.nmiLinePrev = b.ppu.NMILine()
	return nil
}
