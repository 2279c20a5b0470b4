package main

import (
	"flag"
	"log"
	"time"

	"github.com/pkg/profile"

	"github.com/mihyaeru21/nes/internal/nes"
	"github.com/mihyaeru21/nes/internal/ui"
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES .nes file")
	headless := flag.Bool("headless", false, "run without the debug UI, dumping registers per step")
	strict := flag.Bool("strict", false, "fault on undefined opcodes instead of executing them as NOP")
	profileCPU := flag.Bool("profile", false, "write a CPU profile to the working directory")
	flag.Parse()

	if *romPath == "" {
		log.Fatalln("usage: nes -rom <file.nes>")
	}
	if *profileCPU {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	rom, err := nes.NewROMFromFile(*romPath)
	if err != nil {
		log.Fatalf("couldn't load the rom: %s\n", err)
	}

	policy := nes.OpcodePolicyNOP
	if *strict {
		policy = nes.OpcodePolicyFault
	}
	bus := nes.NewBus(policy)
	if err := bus.LoadROM(rom); err != nil {
		log.Fatalf("couldn't reset from the rom: %s\n", err)
	}

	if *headless {
		if err := runHeadless(bus); err != nil {
			log.Fatalf("execution stopped: %s\n", err)
		}
		return
	}

	if err := ui.RunUI(ui.New(bus)); err != nil {
		log.Fatalf("ui stopped: %s\n", err)
	}
}

// runHeadless drives the fetch-decode-execute loop directly, pacing real
// time from the per-instruction cycle cost.
func runHeadless(bus *nes.Bus) error {
	const cyclePeriod = time.Second / nes.ClockHz
	for {
		cycles, err := bus.Step()
		if err != nil {
			return err
		}
		r := bus.InspectRegisters()
		log.Printf("clock: %d PC: %04X A: %02X X: %02X Y: %02X SP: %02X P: %s\n",
			cycles, r.PC, r.A, r.X, r.Y, r.SP, r.StatusString())
		time.Sleep(time.Duration(cycles) * cyclePeriod)
	}
}
