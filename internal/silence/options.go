package silence

import (
	"errors"
	"fmt"
	"time"
)

// Default detector parameters.
const (
	DefaultThreshold     = -50.0
	DefaultMinSilenceLen = 100 * time.Millisecond
	DefaultSeekStep      = time.Millisecond
)

// ErrInvalidOptions is returned by Options.Validate.
var ErrInvalidOptions = errors.New("invalid silence options")

// Options configures silence detection.
type Options struct {
	// Threshold is the level in dBFS at or below which audio is silent.
	Threshold float64
	// MinSilenceLen is the shortest span classified as silence.
	MinSilenceLen time.Duration
	// SeekStep is the stride between analysis windows.
	SeekStep time.Duration
}

// DefaultOptions returns -50 dBFS, 100ms and a 1ms step.
func DefaultOptions() Options {
	return Options{
		Threshold:     DefaultThreshold,
		MinSilenceLen: DefaultMinSilenceLen,
		SeekStep:      DefaultSeekStep,
	}
}

// Validate rejects lengths that are not at least one millisecond.
// Detection does not call it; a non-positive MinSilenceLen simply finds
// nothing.
func (o Options) Validate() error {
	if o.MinSilenceLen < time.Millisecond {
		return fmt.Errorf("%w: min_silence_len must be at least 1ms, got %s", ErrInvalidOptions, o.MinSilenceLen)
	}
	if o.SeekStep < time.Millisecond {
		return fmt.Errorf("%w: seek_step must be at least 1ms, got %s", ErrInvalidOptions, o.SeekStep)
	}
	return nil
}

func (o Options) minLenMS() int {
	return int(o.MinSilenceLen.Milliseconds())
}

func (o Options) stepMS() int {
	if step := int(o.SeekStep.Milliseconds()); step > 0 {
		return step
	}
	return 1
}
