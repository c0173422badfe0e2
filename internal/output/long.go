package output

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/mactone/internal/catalog"
	"github.com/jmylchreest/mactone/internal/tone"
)

// LongFormatter writes aligned columns with size and age.
type LongFormatter struct {
	now func() time.Time
}

// NewLongFormatter creates a new long listing formatter.
func NewLongFormatter(opts FormatterOptions) *LongFormatter {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &LongFormatter{now: now}
}

// Format writes name, size, modification age and path per sound.
func (f *LongFormatter) Format(w io.Writer, sounds []catalog.Sound) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	now := f.now()

	for _, s := range sounds {
		size := humanize.Bytes(uint64(max(s.Size, 0)))
		age := humanize.RelTime(s.ModTime, now, "ago", "from now")
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, size, age, s.Path); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// FormatTiming writes every field of the report including the detected
// intervals.
func (f *LongFormatter) FormatTiming(w io.Writer, r *tone.TimingReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "name:\t%s\n", r.Name)
	fmt.Fprintf(tw, "path:\t%s\n", r.Path)
	fmt.Fprintf(tw, "load time:\t%.3fms\n", millis(r.LoadTime))
	fmt.Fprintf(tw, "trim time:\t%.3fms\n", millis(r.TrimTime))
	fmt.Fprintf(tw, "original:\t%s\n", r.Original)
	fmt.Fprintf(tw, "trimmed:\t%s\n", r.Trimmed)
	fmt.Fprintf(tw, "removed:\t%s\n", r.Removed())
	fmt.Fprintf(tw, "threshold:\t%.1f dBFS\n", r.Thresholds.Threshold)
	fmt.Fprintf(tw, "min silence:\t%s\n", r.Thresholds.MinSilenceLen)
	fmt.Fprintf(tw, "seek step:\t%s\n", r.Thresholds.SeekStep)
	for i, iv := range r.Nonsilent {
		label := ""
		if i == 0 {
			label = "nonsilent:"
		}
		fmt.Fprintf(tw, "%s\t%s\n", label, iv)
	}

	return tw.Flush()
}
