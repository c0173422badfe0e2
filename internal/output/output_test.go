package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/mactone/internal/catalog"
	"github.com/jmylchreest/mactone/internal/silence"
	"github.com/jmylchreest/mactone/internal/tone"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testSounds() []catalog.Sound {
	return []catalog.Sound{
		{
			Name:    "Basso",
			Path:    "/System/Library/Sounds/Basso.aiff",
			Size:    31048,
			ModTime: fixedNow.Add(-48 * time.Hour),
		},
		{
			Name:    "Submarine",
			Path:    "/System/Library/Sounds/Submarine.aiff",
			Size:    1_200_000,
			ModTime: fixedNow.Add(-3 * time.Hour),
		},
	}
}

func testReport() *tone.TimingReport {
	return &tone.TimingReport{
		Name:       "Ping",
		Path:       "/System/Library/Sounds/Ping.aiff",
		LoadTime:   1500 * time.Microsecond,
		TrimTime:   250 * time.Microsecond,
		Original:   1500 * time.Millisecond,
		Trimmed:    600 * time.Millisecond,
		Thresholds: silence.DefaultOptions(),
		Nonsilent: []silence.Interval{
			{Start: 0, End: 200 * time.Millisecond},
			{Start: 400 * time.Millisecond, End: 600 * time.Millisecond},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format   FormatType
		expected Formatter
	}{
		{FormatJSON, &JSONFormatter{}},
		{FormatYAML, &YAMLFormatter{}},
		{FormatPlain, &PlainFormatter{}},
		{"", &PlainFormatter{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			f, err := NewFormatter(tt.format, FormatterOptions{})
			require.NoError(t, err)
			assert.IsType(t, tt.expected, f)
		})
	}

	f, err := NewFormatter(FormatLong, FormatterOptions{})
	require.NoError(t, err)
	assert.IsType(t, &LongFormatter{}, f)

	_, err = NewFormatter("xml", FormatterOptions{})
	assert.Error(t, err)
}

func TestPlainFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewPlainFormatter(FormatterOptions{})
	require.NoError(t, err)

	require.NoError(t, f.Format(&buf, testSounds()))
	assert.Equal(t, "Basso\nSubmarine\n", buf.String())
}

func TestPlainFormatter_CustomTemplate(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewPlainFormatter(FormatterOptions{Template: "{{lower .Name}} {{bytes .Size}}"})
	require.NoError(t, err)

	require.NoError(t, f.Format(&buf, testSounds()))
	assert.Equal(t, "basso 31 kB\nsubmarine 1.2 MB\n", buf.String())
}

func TestPlainFormatter_InvalidTemplate(t *testing.T) {
	_, err := NewPlainFormatter(FormatterOptions{Template: "{{.Name"})
	assert.Error(t, err)
}

func TestPlainFormatter_FormatTiming(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewPlainFormatter(FormatterOptions{})
	require.NoError(t, err)

	require.NoError(t, f.FormatTiming(&buf, testReport()))
	assert.Equal(t, "Ping: 1.5s -> 600ms (load 1.5ms, trim 250µs)\n", buf.String())
}

func TestLongFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	f := NewLongFormatter(FormatterOptions{Now: func() time.Time { return fixedNow }})

	require.NoError(t, f.Format(&buf, testSounds()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"Basso", "31", "kB", "2", "days", "ago", "/System/Library/Sounds/Basso.aiff"},
		strings.Fields(lines[0]))
	assert.Equal(t, []string{"Submarine", "1.2", "MB", "3", "hours", "ago", "/System/Library/Sounds/Submarine.aiff"},
		strings.Fields(lines[1]))

	// Columns are aligned.
	assert.Equal(t, strings.Index(lines[0], "31 kB"), strings.Index(lines[1], "1.2 MB"))
}

func TestLongFormatter_FormatTiming(t *testing.T) {
	var buf bytes.Buffer
	f := NewLongFormatter(FormatterOptions{})

	require.NoError(t, f.FormatTiming(&buf, testReport()))

	out := buf.String()
	assert.Contains(t, out, "load time:")
	assert.Contains(t, out, "1.500ms")
	assert.Contains(t, out, "0.250ms")
	assert.Contains(t, out, "removed:")
	assert.Contains(t, out, "900ms")
	assert.Contains(t, out, "-50.0 dBFS")
	assert.Contains(t, out, "[0ms, 200ms)")
	assert.Contains(t, out, "[400ms, 600ms)")
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(&buf, testSounds()))

	var decoded []catalog.Sound
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Basso", decoded[0].Name)
	assert.Equal(t, int64(1_200_000), decoded[1].Size)
}

func TestJSONFormatter_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestJSONFormatter_FormatTiming(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().FormatTiming(&buf, testReport()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Ping", decoded["name"])
	assert.Equal(t, 1.5, decoded["load_ms"])
	assert.Equal(t, 1500.0, decoded["original_ms"])
	assert.Equal(t, 600.0, decoded["trimmed_ms"])
	assert.Equal(t, 100.0, decoded["min_silence_len_ms"])
	assert.Len(t, decoded["nonsilent"], 2)
}

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter().Format(&buf, testSounds()))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Submarine", decoded[1]["name"])
	assert.Equal(t, "/System/Library/Sounds/Submarine.aiff", decoded[1]["path"])
}

func TestYAMLFormatter_FormatTiming(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter().FormatTiming(&buf, testReport()))

	out := buf.String()
	assert.Contains(t, out, "name: Ping\n")
	assert.Contains(t, out, "trimmed_ms: 600\n")
	assert.Contains(t, out, "  - start_ms: 400\n")
}
