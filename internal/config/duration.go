package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// Duration is a time.Duration written as "250ms", "1.5s" or a bare number
// of milliseconds. The same syntax is accepted in the config file and on
// the command line.
type Duration time.Duration

var _ pflag.Value = (*Duration)(nil)

// UnmarshalText parses a duration from the config file.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q, want e.g. 100ms, 1s or a number of milliseconds: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText writes the duration in time.Duration notation.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration().String()), nil
}

// Duration converts d to a time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d *Duration) String() string {
	return d.Duration().String()
}

// Set parses a flag value.
func (d *Duration) Set(s string) error {
	return d.UnmarshalText([]byte(s))
}

func (d *Duration) Type() string {
	return "duration"
}
