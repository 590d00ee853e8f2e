package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestCart(mapperID uint8, prgBanks, chrBanks uint8) *Cart {
	c := &Cart{
		prgROM:   make([]uint8, int(prgBanks)*prgBankSizeBytes),
		chrMem:   make([]uint8, int(chrBanks)*chrBankSizeBytes),
		prgBanks: prgBanks,
		chrBanks: chrBanks,
		mapperID: mapperID,
	}
	if chrBanks == 0 {
		c.chrIsRAM = true
		c.chrMem = make([]uint8, chrBankSizeBytes)
	}
	c.mapper = NewMapper(c)
	return c
}

func Test_PPU_VBlankTiming(t *testing.T) {
	p := NewPPU()
	p.setCart(newTestCart(0, 1, 1))

	p.scanline, p.cycle = 241, 0
	assert.False(t, p.status&statusVBlank != 0)
	p.Step() // dot 0: cycle becomes 1, no flag yet
	assert.False(t, p.status&statusVBlank != 0)
	p.Step() // dot 1 at scanline 241 sets VBlank
	assert.True(t, p.status&statusVBlank != 0)
}

func Test_PPU_NMILine(t *testing.T) {
	p := NewPPU()
	p.setCart(newTestCart(0, 1, 1))
	p.ctrl = ctrlNMIEnable
	p.status = statusVBlank
	assert.True(t, p.NMILine())

	p.ctrl = 0
	assert.False(t, p.NMILine())
}

func Test_PPU_PaletteMirroring(t *testing.T) {
	p := NewPPU()
	p.setCart(newTestCart(0, 1, 1))

	p.paletteWrite(0x3F00, 0x0A)
	assert.Equal(t, uint8(0x0A), p.paletteRead(0x3F10), "sprite backdrop entries mirror the BG backdrop")
	assert.Equal(t, uint8(0x0A), p.paletteRead(0x3F20), "whole palette table mirrors every 0x20 bytes")
}

func Test_PPU_FrameBufferDimensions(t *testing.T) {
	p := NewPPU()
	assert.Equal(t, 256*240, len(p.FrameBuffer()))
}

func Test_PPU_Sprite0InSecondaryOAM(t *testing.T) {
	p := NewPPU()
	p.setCart(newTestCart(0, 1, 1))
	p.mask = maskShowBG | maskShowSpr

	// park sprites 1-63 below the visible area so only sprite 0 is in range
	for i := 4; i < len(p.oam); i += 4 {
		p.oam[i] = 0xFF
	}

	// sprite 0 at (0,0) with an opaque pixel at column 0
	p.oam[0] = 0 // y
	p.oam[1] = 0 // tile
	p.oam[2] = 0 // attr
	p.oam[3] = 0 // x
	p.cart.chrMem[0] = 0x80 // tile 0 row 0 low plane, bit7 set -> pixel 0 opaque

	p.evaluateSprites(0)
	require := assert.New(t)
	require.Equal(1, p.spriteCount)
	require.True(p.sprite0InSecOAM)
}
