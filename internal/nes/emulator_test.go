package nes

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCustomROM packs a full 16 KiB PRG image (mapper 0, no CHR-ROM) into
// an iNES binary, for scenarios that need specific bytes at specific
// addresses rather than an all-zero bank.
func buildCustomROM(t *testing.T, prg [prgBankSizeBytes]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	header := inesHeader{
		Magic:      inesMagic,
		PrgRomSize: 1,
		ChrRomSize: 0,
	}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, header))
	buf.Write(prg[:])
	return buf.Bytes()
}

// setResetVector points the CPU at addr on the next reset.
func setResetVector(prg *[prgBankSizeBytes]byte, addr uint16) {
	prg[0x3FFC] = uint8(addr)
	prg[0x3FFD] = uint8(addr >> 8)
}

func setNMIVector(prg *[prgBankSizeBytes]byte, addr uint16) {
	prg[0x3FFA] = uint8(addr)
	prg[0x3FFB] = uint8(addr >> 8)
}

func Test_Emulator_ResetVector(t *testing.T) {
	var prg [prgBankSizeBytes]byte
	prg[0x3FFC] = 0x34
	prg[0x3FFD] = 0x12

	e := New(RegionNTSC, 44100, 512)
	require.NoError(t, e.LoadROM(bytes.NewReader(buildCustomROM(t, prg))))

	assert.Equal(t, uint16(0x1234), e.bus.cpu.pc)
}

func Test_Emulator_ImmediateLDAAndFlags(t *testing.T) {
	var prg [prgBankSizeBytes]byte
	prg[0] = 0xA9 // LDA #$00
	prg[1] = 0x00
	prg[2] = 0xA9 // LDA #$80
	prg[3] = 0x80
	setResetVector(&prg, 0x8000)

	e := New(RegionNTSC, 44100, 512)
	require.NoError(t, e.LoadROM(bytes.NewReader(buildCustomROM(t, prg))))

	cycles1 := e.StepInstruction()
	assert.Equal(t, uint16(2), cycles1)
	assert.Equal(t, uint8(0x00), e.bus.cpu.a)
	assert.True(t, e.bus.cpu.getFlag(flagZ))
	assert.False(t, e.bus.cpu.getFlag(flagN))

	cycles2 := e.StepInstruction()
	assert.Equal(t, uint16(2), cycles2)
	assert.Equal(t, uint8(0x80), e.bus.cpu.a)
	assert.False(t, e.bus.cpu.getFlag(flagZ))
	assert.True(t, e.bus.cpu.getFlag(flagN))
}

func Test_Emulator_OAMDMACost(t *testing.T) {
	var prg [prgBankSizeBytes]byte
	prg[0] = 0xA9 // LDA #$02
	prg[1] = 0x02
	prg[2] = 0x8D // STA $4014
	prg[3] = 0x14
	prg[4] = 0x40
	setResetVector(&prg, 0x8000)

	e := New(RegionNTSC, 44100, 512)
	require.NoError(t, e.LoadROM(bytes.NewReader(buildCustomROM(t, prg))))

	for i := 0; i < 256; i++ {
		e.bus.ram.Write8(uint16(0x0200+i), uint8(i))
	}

	ldaCycles := e.StepInstruction()
	staCycles := e.StepInstruction()

	assert.Equal(t, uint16(519), ldaCycles+staCycles, "2 (LDA) + 4 (STA) + 513 (OAM DMA)")
	for i := 0; i < 256; i++ {
		assert.Equal(t, e.bus.ram.Read8(uint16(0x0200+i)), e.bus.ppu.oam[i], "OAM[%d] mismatch", i)
	}
}

func Test_Emulator_VBlankNMIFiresOnce(t *testing.T) {
	var prg [prgBankSizeBytes]byte
	// reset: spin at $8000 until NMI redirects us
	prg[0] = 0x4C // JMP $8000
	prg[1] = 0x00
	prg[2] = 0x80
	// NMI handler at $8010: bump a RAM counter once, then spin forever
	// at $8012 so a second (unexpected) NMI would be visible but a
	// lingering VBlank level wouldn't re-trigger the counter.
	prg[0x10] = 0xE6 // INC $00
	prg[0x11] = 0x00
	prg[0x12] = 0x4C // JMP $8012
	prg[0x13] = 0x12
	prg[0x14] = 0x80
	setResetVector(&prg, 0x8000)
	setNMIVector(&prg, 0x8010)

	e := New(RegionNTSC, 44100, 512)
	require.NoError(t, e.LoadROM(bytes.NewReader(buildCustomROM(t, prg))))

	e.bus.Write8(0x2000, 0x80) // PPUCTRL: enable NMI generation

	stats := e.RunFrame()

	assert.Equal(t, uint32(1), stats.FramesCompleted)
	assert.Equal(t, uint8(1), e.bus.ram.Read8(0x0000), "NMI handler ran exactly once")
}

// Test_Emulator_NMICycleCostIsFolded asserts that StepInstruction's
// returned cycle count, summed over a whole frame, accounts for the 7
// cycles NMI() spends pushing PC/P and loading the vector — not just the
// cycles of the instructions the CPU actually fetched.
func Test_Emulator_NMICycleCostIsFolded(t *testing.T) {
	var prg [prgBankSizeBytes]byte
	prg[0] = 0x4C // JMP $8000
	prg[1] = 0x00
	prg[2] = 0x80
	prg[0x10] = 0x4C // NMI handler: JMP $8010 (spin)
	prg[0x11] = 0x10
	prg[0x12] = 0x80
	setResetVector(&prg, 0x8000)
	setNMIVector(&prg, 0x8010)

	e := New(RegionNTSC, 44100, 512)
	require.NoError(t, e.LoadROM(bytes.NewReader(buildCustomROM(t, prg))))

	e.bus.Write8(0x2000, 0x80) // PPUCTRL: enable NMI generation

	totalCyclesBefore := e.bus.cpu.totalCycles
	var summedCycles uint64
	startFrame := e.frameIndex
	for e.frameIndex == startFrame {
		summedCycles += uint64(e.StepInstruction())
	}

	assert.Equal(t, e.bus.cpu.totalCycles-totalCyclesBefore, summedCycles,
		"StepInstruction's returned cycles must account for NMI's 7-cycle service cost")
}
