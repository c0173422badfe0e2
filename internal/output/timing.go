package output

import (
	"github.com/jmylchreest/mactone/internal/tone"
)

// timingView is the serialised form of a tone.TimingReport.
type timingView struct {
	Name          string         `json:"name" yaml:"name"`
	Path          string         `json:"path" yaml:"path"`
	LoadMS        float64        `json:"load_ms" yaml:"load_ms"`
	TrimMS        float64        `json:"trim_ms" yaml:"trim_ms"`
	OriginalMS    int64          `json:"original_ms" yaml:"original_ms"`
	TrimmedMS     int64          `json:"trimmed_ms" yaml:"trimmed_ms"`
	Threshold     float64        `json:"silence_thresh" yaml:"silence_thresh"`
	MinSilenceMS  int64          `json:"min_silence_len_ms" yaml:"min_silence_len_ms"`
	SeekStepMS    int64          `json:"seek_step_ms" yaml:"seek_step_ms"`
	NonsilentSpan []intervalView `json:"nonsilent" yaml:"nonsilent"`
}

type intervalView struct {
	StartMS int64 `json:"start_ms" yaml:"start_ms"`
	EndMS   int64 `json:"end_ms" yaml:"end_ms"`
}

func newTimingView(r *tone.TimingReport) timingView {
	spans := make([]intervalView, 0, len(r.Nonsilent))
	for _, iv := range r.Nonsilent {
		spans = append(spans, intervalView{
			StartMS: iv.Start.Milliseconds(),
			EndMS:   iv.End.Milliseconds(),
		})
	}

	return timingView{
		Name:          r.Name,
		Path:          r.Path,
		LoadMS:        millis(r.LoadTime),
		TrimMS:        millis(r.TrimTime),
		OriginalMS:    r.Original.Milliseconds(),
		TrimmedMS:     r.Trimmed.Milliseconds(),
		Threshold:     r.Thresholds.Threshold,
		MinSilenceMS:  r.Thresholds.MinSilenceLen.Milliseconds(),
		SeekStepMS:    r.Thresholds.SeekStep.Milliseconds(),
		NonsilentSpan: spans,
	}
}
