package simutil

import "errors"

// Simulation helper errors
var (
	ErrUnknownPreset        = errors.New("unknown preset")
	ErrInvalidSealingPeriod = errors.New("clique sealing period must be positive")
	ErrInvalidSlotDuration  = errors.New("seconds per slot must be positive")
)
