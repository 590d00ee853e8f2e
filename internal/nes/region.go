package nes

// Region selects the timing constants the scheduler runs against. The
// CORE only cares about CPU clock rate and the PPU-cycles-per-CPU-cycle
// ratio stays 3:1 on both regions; PAL differs in clock speed and
// scanline count.
type Region uint8

const (
	RegionNTSC Region = iota
	RegionPAL
)

func (r Region) String() string {
	if r == RegionPAL {
		return "PAL"
	}
	return "NTSC"
}

// CPUClockHz returns the CPU clock rate for the region, used by the APU
// to size its audio resampler.
func (r Region) CPUClockHz() float64 {
	if r == RegionPAL {
		return 1662607.0
	}
	return 1789773.0
}

// FramesPerSecond returns the nominal refresh rate for the region.
func (r Region) FramesPerSecond() float64 {
	if r == RegionPAL {
		return 50.0
	}
	return 60.0988
}

// ScanlinesPerFrame returns the total scanline count, including VBlank,
// for the region.
func (r Region) ScanlinesPerFrame() int {
	if r == RegionPAL {
		return 312
	}
	return 262
}
