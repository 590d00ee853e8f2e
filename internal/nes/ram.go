package nes

const ramSizeBytes = 0x800

// RAM is the console's 2 KB of work RAM. $0000-$1FFF is wired to only 11
// address lines, so it mirrors four times across that window; RAM masks
// the incoming address itself so Bus can hand it the raw CPU address
// rather than pre-masking at every call site.
type RAM struct {
	bytes [ramSizeBytes]uint8
}

func NewRAM() *RAM {
	return &RAM{}
}

func (r *RAM) Read8(addr uint16) uint8 {
	return r.bytes[addr&(ramSizeBytes-1)]
}

func (r *RAM) Write8(addr uint16, data uint8) {
	r.bytes[addr&(ramSizeBytes-1)] = data
}
