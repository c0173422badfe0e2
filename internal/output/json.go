package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/mactone/internal/catalog"
	"github.com/jmylchreest/mactone/internal/tone"
)

// JSONFormatter formats sounds as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes sounds as a JSON array.
func (f *JSONFormatter) Format(w io.Writer, sounds []catalog.Sound) error {
	if sounds == nil {
		sounds = []catalog.Sound{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(sounds)
}

// FormatTiming writes a timing report as JSON with durations in
// milliseconds.
func (f *JSONFormatter) FormatTiming(w io.Writer, r *tone.TimingReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newTimingView(r))
}
