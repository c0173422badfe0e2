package output

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/jmylchreest/mactone/internal/catalog"
	"github.com/jmylchreest/mactone/internal/tone"
)

// PlainFormatter writes one sound name per line.
type PlainFormatter struct {
	template *template.Template
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) (*PlainFormatter, error) {
	f := &PlainFormatter{}

	if opts.Template != "" {
		tmpl, err := template.New("plain").Funcs(templateFuncs()).Parse(opts.Template)
		if err != nil {
			return nil, fmt.Errorf("invalid template: %w", err)
		}
		f.template = tmpl
	}

	return f, nil
}

// Format writes sound names, or the template rendered per sound.
func (f *PlainFormatter) Format(w io.Writer, sounds []catalog.Sound) error {
	for _, s := range sounds {
		if f.template != nil {
			if err := f.template.Execute(w, s); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(w, s.Name); err != nil {
			return err
		}
	}
	return nil
}

// FormatTiming writes a short human readable report.
func (f *PlainFormatter) FormatTiming(w io.Writer, r *tone.TimingReport) error {
	_, err := fmt.Fprintf(w, "%s: %s -> %s (load %s, trim %s)\n",
		r.Name, r.Original, r.Trimmed, r.LoadTime.Round(10*time.Microsecond), r.TrimTime.Round(10*time.Microsecond))
	return err
}
