package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_APU_FrameSequencerStepCounts4Step(t *testing.T) {
	a := NewAPU(44100, RegionNTSC)
	a.writeRegister(0x4015, 0x0F) // enable pulse, triangle and noise channels
	a.pulse1.lengthCounter = 10
	a.pulse1.lengthHalt = false

	for i := uint32(0); i < frameStep2NTSC; i++ {
		a.stepFrameSequencer()
	}
	assert.Equal(t, uint8(9), a.pulse1.lengthCounter, "half-frame clock at step 2 decrements length")
}

func Test_APU_FrameSequencer5StepNoIRQ(t *testing.T) {
	a := NewAPU(44100, RegionNTSC)
	a.writeRegister(0x4017, 0x80) // five-step mode
	a.irqInhibit = false

	for i := uint32(0); i < frameStep5NTSC+1; i++ {
		a.stepFrameSequencer()
	}
	assert.False(t, a.frameIRQ, "5-step mode never asserts the frame IRQ")
}

func Test_APU_FrameSequencer4StepAssertsIRQ(t *testing.T) {
	a := NewAPU(44100, RegionNTSC)
	a.irqInhibit = false

	for i := uint32(0); i < frameStep4NTSC; i++ {
		a.stepFrameSequencer()
	}
	assert.True(t, a.frameIRQ)
}

func Test_APU_LengthCounterDecrement(t *testing.T) {
	p := pulseChannel{lengthCounter: 5, lengthHalt: false}
	p.clockLength()
	require.Equal(t, uint8(4), p.lengthCounter)

	halted := pulseChannel{lengthCounter: 5, lengthHalt: true}
	halted.clockLength()
	require.Equal(t, uint8(5), halted.lengthCounter, "halted channels don't decrement")
}

func Test_APU_MixerBounds(t *testing.T) {
	a := NewAPU(44100, RegionNTSC)
	sample := a.mix()
	assert.GreaterOrEqual(t, sample, float32(-1))
	assert.LessOrEqual(t, sample, float32(1))
}
