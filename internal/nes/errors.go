package nes

import "errors"

// Errors returned from LoadROM. The emulator retains its prior cartridge
// (if any) when one of these is returned.
var (
	ErrBadMagic          = errors.New("nes: bad ines magic")
	ErrUnsupportedMapper = errors.New("nes: unsupported mapper")
	ErrTruncated         = errors.New("nes: truncated rom")
)

// ErrStateInvalid is returned from LoadState on a version mismatch or a
// shape that doesn't match the current region/configuration. Emulator
// state is left unchanged; the emulator is not stopped or paused.
var ErrStateInvalid = errors.New("nes: invalid save state")
