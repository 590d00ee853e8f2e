package main

import (
	"flag"
	"log"
	"os"

	"github.com/pkg/profile"

	"github.com/Roms-lab/Nexus/internal/host"
	"github.com/Roms-lab/Nexus/internal/nes"
)

func main() {
	var (
		romPath    = flag.String("rom", "", "path to an iNES (.nes) ROM file")
		pal        = flag.Bool("pal", false, "run at PAL timing instead of NTSC")
		sampleRate = flag.Int("sample-rate", 44100, "audio sample rate in Hz")
		profMode   = flag.String("prof", "", "enable profiling: cpu, mem, or empty to disable")
	)
	flag.Parse()

	if *romPath == "" {
		log.Fatal("missing -rom")
	}

	switch *profMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile).Stop()
	case "":
	default:
		log.Fatalf("unknown -prof mode %q, want cpu, mem, or empty", *profMode)
	}

	region := nes.RegionNTSC
	if *pal {
		region = nes.RegionPAL
	}

	f, err := os.Open(*romPath)
	if err != nil {
		log.Fatalf("couldn't open rom: %s", err)
	}
	defer f.Close()

	emu := nes.New(region, *sampleRate, 512)
	if err := emu.LoadROM(f); err != nil {
		log.Fatalf("couldn't load rom: %s", err)
	}

	ui := host.New(emu)
	if err := host.RunUI(ui); err != nil {
		log.Fatalf("ui exited with error: %s", err)
	}
}
