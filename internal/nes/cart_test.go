package nes

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildInesImage(t *testing.T, mapperID uint8, prgBanks, chrBanks uint8) []byte {
	t.Helper()
	var buf bytes.Buffer
	header := inesHeader{
		Magic:      inesMagic,
		PrgRomSize: prgBanks,
		ChrRomSize: chrBanks,
		Flags6:     (mapperID & 0xF) << 4,
		Flags7:     mapperID & 0xF0,
	}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, header))
	buf.Write(make([]byte, int(prgBanks)*prgBankSizeBytes))
	buf.Write(make([]byte, int(chrBanks)*chrBankSizeBytes))
	return buf.Bytes()
}

func Test_Cart_BadMagic(t *testing.T) {
	_, err := NewCartFromReader(bytes.NewReader(make([]byte, 16)))
	assert.ErrorIs(t, err, ErrBadMagic)
}

func Test_Cart_Truncated(t *testing.T) {
	data := buildInesImage(t, 0, 1, 1)
	_, err := NewCartFromReader(bytes.NewReader(data[:len(data)-10]))
	assert.ErrorIs(t, err, ErrTruncated)
}

func Test_Cart_UnsupportedMapper(t *testing.T) {
	data := buildInesImage(t, 4, 1, 1)
	_, err := NewCartFromReader(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrUnsupportedMapper)
}

func Test_Mapper2_BankSwitch(t *testing.T) {
	data := buildInesImage(t, 2, 4, 0)
	cart, err := NewCartFromReader(bytes.NewReader(data))
	require.NoError(t, err)

	// mark each bank's first byte so reads can tell banks apart
	for b := 0; b < 4; b++ {
		cart.prgROM[b*prgBankSizeBytes] = uint8(b + 1)
	}

	cart.Write8(0x8000, 2) // select bank 2
	assert.Equal(t, uint8(3), cart.Read8(0x8000), "switchable window reflects the selected bank")
	assert.Equal(t, uint8(4), cart.Read8(0xC000), "fixed window always reads the last bank")

	cart.Write8(0x9000, 5) // 5 mod 4 banks = bank 1
	assert.Equal(t, uint8(2), cart.Read8(0x8000))
	assert.Equal(t, uint8(4), cart.Read8(0xC000), "fixed window unaffected by bank switch")
}
