package silence

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/v2"
)

// Interval is a half-open range [Start, End) of buffer positions.
type Interval struct {
	Start time.Duration `json:"start" yaml:"start"`
	End   time.Duration `json:"end" yaml:"end"`
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End - i.Start
}

func (i Interval) String() string {
	return fmt.Sprintf("[%dms, %dms)", i.Start.Milliseconds(), i.End.Milliseconds())
}

// span is an interval in whole milliseconds.
type span struct {
	start, end int
}

func (s span) interval() Interval {
	return Interval{
		Start: time.Duration(s.start) * time.Millisecond,
		End:   time.Duration(s.end) * time.Millisecond,
	}
}

func toIntervals(spans []span) []Interval {
	if len(spans) == 0 {
		return nil
	}
	out := make([]Interval, len(spans))
	for i, s := range spans {
		out[i] = s.interval()
	}
	return out
}

// DetectSilence returns the silent intervals of buf in order.
//
// A window of MinSilenceLen slides across the buffer every SeekStep; the
// final window start is always examined. Windows whose RMS amplitude is
// at or below Threshold are silent, and silent windows that touch or
// overlap merge into a single interval.
func DetectSilence(buf *beep.Buffer, opts Options) []Interval {
	if buf == nil {
		return nil
	}
	silent, _ := detectSilence(newEnergyIndex(buf), opts)
	return toIntervals(silent)
}

// DetectNonsilent returns the intervals between the silent ones.
//
// The result is empty when buf is empty, entirely silent or shorter than
// MinSilenceLen. A buffer without any silence yields [0, len).
func DetectNonsilent(buf *beep.Buffer, opts Options) []Interval {
	if buf == nil {
		return nil
	}
	spans, _ := detectNonsilent(newEnergyIndex(buf), opts)
	return toIntervals(spans)
}

func detectSilence(idx *energyIndex, opts Options) ([]span, int) {
	total := idx.lengthMS()
	minLen := opts.minLenMS()
	if minLen <= 0 || total < minLen {
		return nil, total
	}

	thresh := toAmplitude(opts.Threshold)
	step := opts.stepMS()
	last := total - minLen

	var starts []int
	for i := 0; i <= last; i += step {
		if idx.rms(i, i+minLen) <= thresh {
			starts = append(starts, i)
		}
	}
	if last%step != 0 && idx.rms(last, last+minLen) <= thresh {
		starts = append(starts, last)
	}
	if len(starts) == 0 {
		return nil, total
	}

	var ranges []span
	rangeStart, prev := starts[0], starts[0]
	for _, s := range starts[1:] {
		continuous := s == prev+step
		gap := s > prev+minLen
		if !continuous && gap {
			ranges = append(ranges, span{rangeStart, prev + minLen})
			rangeStart = s
		}
		prev = s
	}
	ranges = append(ranges, span{rangeStart, prev + minLen})

	return ranges, total
}

func detectNonsilent(idx *energyIndex, opts Options) ([]span, int) {
	silent, total := detectSilence(idx, opts)
	if total == 0 || total < opts.minLenMS() {
		return nil, total
	}
	if len(silent) == 0 {
		return []span{{0, total}}, total
	}
	if silent[0].start == 0 && silent[0].end == total {
		return nil, total
	}

	var out []span
	prevEnd := 0
	for _, s := range silent {
		out = append(out, span{prevEnd, s.start})
		prevEnd = s.end
	}
	if prevEnd != total {
		out = append(out, span{prevEnd, total})
	}
	if out[0].start == 0 && out[0].end == 0 {
		out = out[1:]
	}
	return out, total
}
