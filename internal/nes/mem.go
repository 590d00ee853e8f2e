package nes

// ReadWriter is the single memory-access abstraction shared by the CPU,
// RAM, Cart and Mapper: anything that can be addressed as a flat 8-bit
// space implements it.
type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}
