package simutil

import (
	"fmt"
	"math"
	"math/big"
)

// ETHTTDIncrement is the difficulty added per sealed clique block on the
// simulated execution chain.
const ETHTTDIncrement = 2

// Preset carries the consensus constants the estimators depend on.
type Preset struct {
	Name          string
	SlotsPerEpoch int
}

var (
	MainnetPreset = Preset{Name: "mainnet", SlotsPerEpoch: 32}
	MinimalPreset = Preset{Name: "minimal", SlotsPerEpoch: 8}
)

func PresetByName(name string) (Preset, error) {
	switch name {
	case MainnetPreset.Name:
		return MainnetPreset, nil
	case MinimalPreset.Name:
		return MinimalPreset, nil
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

type RunDurationConfig struct {
	GenesisDelaySeconds    int
	RunTill                int // epoch
	SecondsPerSlot         int
	GraceExtraTimeFraction float64
}

type TTDConfig struct {
	GenesisDelaySeconds int
	CliqueSealingPeriod int
	AdditionalSlots     int
	SecondsPerSlot      int
	BellatrixForkEpoch  int
}

type ShanghaiConfig struct {
	GenesisDelaySeconds int
	Eth1GenesisTime     int64
	SecondsPerSlot      int
	CapellaForkEpoch    int
	AdditionalSlots     int
}

// EstimatedTimeInSecForRun returns how long a run up to cfg.RunTill takes,
// padded by the grace fraction and rounded to whole seconds.
func EstimatedTimeInSecForRun(p Preset, cfg RunDurationConfig) int {
	durationSec := float64(cfg.SecondsPerSlot*p.SlotsPerEpoch*cfg.RunTill + cfg.GenesisDelaySeconds)
	return int(math.Round(durationSec + durationSec*cfg.GraceExtraTimeFraction))
}

// EstimatedTTD returns the terminal total difficulty the execution chain
// reaches around the bellatrix fork.
func EstimatedTTD(p Preset, cfg TTDConfig) (*big.Int, error) {
	if cfg.CliqueSealingPeriod <= 0 {
		return nil, ErrInvalidSealingPeriod
	}

	// TTD lands one epoch late when counted from the fork epoch itself.
	secondsTillBellatrix := cfg.GenesisDelaySeconds +
		(cfg.BellatrixForkEpoch-1)*p.SlotsPerEpoch*cfg.SecondsPerSlot +
		cfg.AdditionalSlots*cfg.SecondsPerSlot

	blocks := math.Ceil(float64(secondsTillBellatrix) / float64(cfg.CliqueSealingPeriod))
	return big.NewInt(int64(blocks) * ETHTTDIncrement), nil
}

// EstimatedShanghaiTime returns the execution layer timestamp at which the
// capella fork activates.
func EstimatedShanghaiTime(p Preset, cfg ShanghaiConfig) int64 {
	secondsTillCapella := int64(cfg.CapellaForkEpoch * p.SlotsPerEpoch * cfg.SecondsPerSlot)
	return cfg.Eth1GenesisTime + int64(cfg.GenesisDelaySeconds) + secondsTillCapella +
		int64(cfg.AdditionalSlots*cfg.SecondsPerSlot)
}
