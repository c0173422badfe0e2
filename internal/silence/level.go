package silence

import (
	"math"

	"github.com/gopxl/beep/v2"
)

// Level returns the RMS level of samples in dBFS. Digital silence
// returns -Inf. Only the first channels channels of each frame are
// considered (1 or 2).
func Level(samples [][2]float64, channels int) float64 {
	channels = clampChannels(channels)
	if len(samples) == 0 {
		return math.Inf(-1)
	}

	var energy float64
	for _, s := range samples {
		energy += frameEnergy(s, channels)
	}
	return toDBFS(math.Sqrt(energy / float64(len(samples)*channels)))
}

// toDBFS converts a linear amplitude (full scale = 1.0) to dBFS.
func toDBFS(amplitude float64) float64 {
	if amplitude <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(amplitude)
}

// toAmplitude converts dBFS to a linear amplitude.
func toAmplitude(dbfs float64) float64 {
	return math.Pow(10, dbfs/20)
}

func frameEnergy(s [2]float64, channels int) float64 {
	e := s[0] * s[0]
	if channels == 2 {
		e += s[1] * s[1]
	}
	return e
}

func clampChannels(n int) int {
	if n == 2 {
		return 2
	}
	return 1
}

// energyIndex answers RMS queries over millisecond ranges of a buffer in
// constant time using prefix sums of per-frame energy.
type energyIndex struct {
	prefix   []float64 // prefix[i] is the energy of frames [0, i)
	rate     int64
	channels int
}

func newEnergyIndex(buf *beep.Buffer) *energyIndex {
	format := buf.Format()
	idx := &energyIndex{
		rate:     int64(format.SampleRate),
		channels: clampChannels(format.NumChannels),
	}

	samples := readAll(buf)
	idx.prefix = make([]float64, len(samples)+1)
	for i, s := range samples {
		idx.prefix[i+1] = idx.prefix[i] + frameEnergy(s, idx.channels)
	}
	return idx
}

func (e *energyIndex) frames() int {
	return len(e.prefix) - 1
}

// lengthMS is the buffer length truncated to whole milliseconds.
func (e *energyIndex) lengthMS() int {
	if e.rate <= 0 {
		return 0
	}
	return int(int64(e.frames()) * 1000 / e.rate)
}

// frameAt maps a millisecond position to a frame offset.
func (e *energyIndex) frameAt(ms int) int {
	f := int(int64(ms) * e.rate / 1000)
	if f < 0 {
		return 0
	}
	if f > e.frames() {
		return e.frames()
	}
	return f
}

// rms returns the linear RMS amplitude of [fromMS, toMS).
func (e *energyIndex) rms(fromMS, toMS int) float64 {
	a, b := e.frameAt(fromMS), e.frameAt(toMS)
	if b <= a {
		return 0
	}
	return math.Sqrt((e.prefix[b] - e.prefix[a]) / float64((b-a)*e.channels))
}

func readAll(buf *beep.Buffer) [][2]float64 {
	n := buf.Len()
	out := make([][2]float64, n)
	s := buf.Streamer(0, n)
	for filled := 0; filled < n; {
		k, ok := s.Stream(out[filled:])
		filled += k
		if !ok || k == 0 {
			return out[:filled]
		}
	}
	return out
}
