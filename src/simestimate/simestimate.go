package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"simlist/src/simutil"
)

// waitEnv stands in for a running simulation that only needs to record
// why it was stopped.
type waitEnv struct {
	logger   *log.Logger
	exitCode int
}

func (e *waitEnv) Stop(_ context.Context, exitCode int, reason string) error {
	e.logger.Printf("Stopping simulation (code %d): %s", exitCode, reason)
	e.exitCode = exitCode
	return nil
}

func main() {
	var presetName string
	var forks []forkEpoch
	var runTill, genesisDelay, secondsPerSlot, cliquePeriod, additionalSlots int
	var eth1GenesisTime int64
	var grace float64
	var wait bool

	flag.StringVar(&presetName, "preset", "minimal", "The consensus preset, mainnet or minimal")
	flag.IntVar(&runTill, "run-till", 0, "The epoch the simulation runs until")
	flag.IntVar(&genesisDelay, "genesis-delay", 0, "Seconds between startup and genesis")
	flag.IntVar(&secondsPerSlot, "seconds-per-slot", 0, "The slot duration in seconds")
	flag.Float64Var(&grace, "grace", 0.2, "Extra run time as a fraction of the estimate")
	flag.IntVar(&cliquePeriod, "clique-period", 0, "Clique sealing period of the execution chain, 0 skips the TTD estimate")
	flag.IntVar(&additionalSlots, "additional-slots", 0, "Slots added after a fork before it counts as reached")
	flag.Int64Var(&eth1GenesisTime, "eth1-genesis", 0, "Unix time of the execution chain genesis")
	flag.Func("forks", "Forks as name=epoch pairs separated by a whitespace", func(s string) (err error) {
		forks, err = parseForks(s)
		return err
	})
	flag.BoolVar(&wait, "wait", false, "Block for the estimated run time, stopping early on SIGINT/SIGTERM")

	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	preset, err := simutil.PresetByName(presetName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if secondsPerSlot <= 0 {
		fmt.Fprintln(os.Stderr, "Must specify the slot duration")
		os.Exit(1)
	}

	schedule, err := simutil.NewForkSchedule(preset, eth1GenesisTime+int64(genesisDelay), secondsPerSlot)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, f := range forks {
		schedule.Add(f.name, f.epoch)
	}
	ordered := schedule.Drain()

	duration := simutil.EstimatedTimeInSecForRun(preset, simutil.RunDurationConfig{
		GenesisDelaySeconds:    genesisDelay,
		RunTill:                runTill,
		SecondsPerSlot:         secondsPerSlot,
		GraceExtraTimeFraction: grace,
	})
	fmt.Printf("Preset: %v\n", preset.Name)
	fmt.Printf("Estimated run time: %ds\n", duration)

	for _, f := range ordered {
		fmt.Printf("Fork %v at epoch %d (%d)\n", simutil.StrFixedSize(f.Name, 10), f.Epoch, f.Timestamp)
		switch f.Name {
		case "bellatrix":
			if cliquePeriod == 0 {
				continue
			}
			ttd, err := simutil.EstimatedTTD(preset, simutil.TTDConfig{
				GenesisDelaySeconds: genesisDelay,
				CliqueSealingPeriod: cliquePeriod,
				AdditionalSlots:     additionalSlots,
				SecondsPerSlot:      secondsPerSlot,
				BellatrixForkEpoch:  f.Epoch,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Cannot estimate TTD: %v\n", err)
				continue
			}
			fmt.Printf("  Estimated TTD: %v\n", ttd)
		case "capella":
			fmt.Printf("  Estimated shanghai time: %d\n", simutil.EstimatedShanghaiTime(preset, simutil.ShanghaiConfig{
				GenesisDelaySeconds: genesisDelay,
				Eth1GenesisTime:     eth1GenesisTime,
				SecondsPerSlot:      secondsPerSlot,
				CapellaForkEpoch:    f.Epoch,
				AdditionalSlots:     additionalSlots,
			}))
		}
	}

	if !wait {
		return
	}

	env := &waitEnv{logger: logger}
	h := simutil.RegisterProcessHandler(env, logger)
	defer h.Close()

	select {
	case <-h.Done():
		if env.exitCode != 0 {
			h.Close()
			os.Exit(env.exitCode)
		}
	case <-time.After(time.Duration(duration) * time.Second):
		logger.Println("Estimated run time elapsed")
	}
}
