// Package output provides output formatters for sound listings and timing
// reports.
package output

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/mactone/internal/catalog"
	"github.com/jmylchreest/mactone/internal/tone"
)

// Formatter formats sounds for output.
type Formatter interface {
	// Format writes formatted sounds to the writer.
	Format(w io.Writer, sounds []catalog.Sound) error

	// FormatTiming writes a trim timing report to the writer.
	FormatTiming(w io.Writer, report *tone.TimingReport) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatLong  FormatType = "long"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// Formats lists the supported format names.
var Formats = []FormatType{FormatPlain, FormatLong, FormatJSON, FormatYAML}

// ParseFormat converts a flag value to a FormatType.
func ParseFormat(s string) (FormatType, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (valid: plain, long, json, yaml)", s)
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Template string // Custom template for plain format
	Now      func() time.Time
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) (Formatter, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	switch format {
	case FormatJSON:
		return NewJSONFormatter(), nil
	case FormatYAML:
		return NewYAMLFormatter(), nil
	case FormatLong:
		return NewLongFormatter(opts), nil
	case FormatPlain, "":
		return NewPlainFormatter(opts)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// templateFuncs returns template helper functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"bytes": func(n int64) string {
			return humanize.Bytes(uint64(max(n, 0)))
		},
		"ago": humanize.Time,
		"lower": strings.ToLower,
	}
}

// millis renders a duration as fractional milliseconds.
func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
