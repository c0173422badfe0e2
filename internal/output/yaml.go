package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/mactone/internal/catalog"
	"github.com/jmylchreest/mactone/internal/tone"
)

// YAMLFormatter formats sounds as YAML.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format writes sounds as a YAML sequence.
func (f *YAMLFormatter) Format(w io.Writer, sounds []catalog.Sound) error {
	if sounds == nil {
		sounds = []catalog.Sound{}
	}
	return encodeYAML(w, sounds)
}

// FormatTiming writes a timing report as YAML.
func (f *YAMLFormatter) FormatTiming(w io.Writer, r *tone.TimingReport) error {
	return encodeYAML(w, newTimingView(r))
}

func encodeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
