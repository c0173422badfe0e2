package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/aiff"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// ErrUnsupportedFormat is returned for file extensions Decode cannot handle.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Decode reads the sound file at path into memory.
// Supports AIFF, WAV, OGG Vorbis and MP3, chosen by file extension.
func Decode(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound file: %w", err)
	}
	defer func() { _ = f.Close() }()

	ext := strings.ToLower(filepath.Ext(path))

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case ".aiff", ".aif", ".aifc":
		buf, err := decodeAIFF(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode sound: %w", err)
		}
		return buf, nil
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg", ".oga":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode sound: %w", err)
	}
	defer func() { _ = streamer.Close() }()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("failed to decode sound: %w", err)
	}

	return buffer, nil
}

func decodeAIFF(f *os.File) (*beep.Buffer, error) {
	d := aiff.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, errors.New("not a valid AIFF file")
	}

	pcm, err := d.FullPCMBuffer()
	if err != nil {
		return nil, err
	}

	bitDepth := pcm.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = int(d.BitDepth)
	}
	return fromIntBuffer(pcm, bitDepth)
}

// fromIntBuffer converts interleaved integer PCM to a beep buffer.
// Channels beyond the second are dropped.
func fromIntBuffer(pcm *goaudio.IntBuffer, bitDepth int) (*beep.Buffer, error) {
	if pcm == nil || pcm.Format == nil {
		return nil, errors.New("missing PCM format")
	}
	channels := pcm.Format.NumChannels
	if channels < 1 {
		return nil, fmt.Errorf("invalid channel count %d", channels)
	}
	if pcm.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", pcm.Format.SampleRate)
	}
	if bitDepth < 8 || bitDepth > 32 {
		return nil, fmt.Errorf("unsupported bit depth %d", bitDepth)
	}

	scale := float64(int64(1) << (bitDepth - 1))
	frames := len(pcm.Data) / channels
	samples := make([][2]float64, frames)
	for i := range samples {
		left := float64(pcm.Data[i*channels]) / scale
		right := left
		if channels > 1 {
			right = float64(pcm.Data[i*channels+1]) / scale
		}
		samples[i] = [2]float64{left, right}
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(pcm.Format.SampleRate),
		NumChannels: min(channels, 2),
		Precision:   (bitDepth + 7) / 8,
	}
	return NewBuffer(format, samples), nil
}

// NewBuffer builds a buffer holding a copy of samples.
func NewBuffer(format beep.Format, samples [][2]float64) *beep.Buffer {
	buf := beep.NewBuffer(format)
	pos := 0
	buf.Append(beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := copy(out, samples[pos:])
		pos += n
		return n, true
	}))
	return buf
}
