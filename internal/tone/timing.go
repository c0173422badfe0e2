package tone

import (
	"time"

	"github.com/jmylchreest/mactone/internal/audio"
	"github.com/jmylchreest/mactone/internal/silence"
)

// TimingReport compares a sound before and after trimming.
type TimingReport struct {
	Name       string
	Path       string
	LoadTime   time.Duration
	TrimTime   time.Duration
	Original   time.Duration
	Trimmed    time.Duration
	Nonsilent  []silence.Interval
	Thresholds silence.Options
}

// Removed returns how much audio trimming drops.
func (r *TimingReport) Removed() time.Duration {
	return r.Original - r.Trimmed
}

// Timing measures how long decoding and trimming a sound take.
func (s *Service) Timing(name string, opts silence.Options) (*TimingReport, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	sound, err := s.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	buf, err := audio.Decode(sound.Path)
	if err != nil {
		return nil, err
	}
	loaded := time.Now()

	nonsilent := silence.DetectNonsilent(buf, opts)
	trimmed := silence.Trim(buf, opts)
	done := time.Now()

	rate := buf.Format().SampleRate
	return &TimingReport{
		Name:       sound.Name,
		Path:       sound.Path,
		LoadTime:   loaded.Sub(start),
		TrimTime:   done.Sub(loaded),
		Original:   rate.D(buf.Len()),
		Trimmed:    rate.D(trimmed.Len()),
		Nonsilent:  nonsilent,
		Thresholds: opts,
	}, nil
}
