package audio

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// speakerLatency is the length of the speaker's output buffer.
const speakerLatency = 100 * time.Millisecond

// output is the device streamers are mixed into.
type output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
	Close()
}

// speakerOutput is the process-wide beep speaker.
type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, n int) error { return speaker.Init(rate, n) }
func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerOutput) Lock() { speaker.Lock() }
func (speakerOutput) Unlock() { speaker.Unlock() }
func (speakerOutput) Close() { speaker.Close() }

// SpeakerPlayer plays sounds in-process through the beep speaker.
// Decoded files are kept in memory until they change on disk.
type SpeakerPlayer struct {
	logger *slog.Logger
	out    output

	mu     sync.Mutex
	volume float64
	rate   beep.SampleRate // 0 until the speaker is opened

	decoded sync.Map // path -> decodedFile
}

type decodedFile struct {
	buf     *beep.Buffer
	modTime time.Time
}

// NewSpeakerPlayer creates an in-process player at full volume. The speaker
// is opened on first use at the rate of the first sound played.
func NewSpeakerPlayer(logger *slog.Logger) *SpeakerPlayer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpeakerPlayer{logger: logger, out: speakerOutput{}, volume: 1}
}

// SetVolume sets the playback volume, clamped to 0..1.
func (p *SpeakerPlayer) SetVolume(volume float64) {
	p.mu.Lock()
	p.volume = min(max(volume, 0), 1)
	p.mu.Unlock()
}

// Volume returns the playback volume.
func (p *SpeakerPlayer) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Play decodes the file at path, or reuses an earlier decode, and plays it.
func (p *SpeakerPlayer) Play(ctx context.Context, path string) error {
	buf, err := p.decode(path)
	if err != nil {
		return err
	}
	return p.PlayBuffer(ctx, buf)
}

// Warm decodes path ahead of playback.
func (p *SpeakerPlayer) Warm(path string) error {
	_, err := p.decode(path)
	return err
}

func (p *SpeakerPlayer) decode(path string) (*beep.Buffer, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound file: %w", err)
	}

	if v, ok := p.decoded.Load(path); ok {
		if f := v.(decodedFile); f.modTime.Equal(info.ModTime()) {
			return f.buf, nil
		}
		p.logger.Debug("sound changed on disk", "path", path)
	}

	buf, err := Decode(path)
	if err != nil {
		return nil, err
	}
	p.decoded.Store(path, decodedFile{buf: buf, modTime: info.ModTime()})
	return buf, nil
}

// Reset drops every decoded file.
func (p *SpeakerPlayer) Reset() {
	p.decoded.Clear()
}

func (p *SpeakerPlayer) isDecoded(path string) bool {
	_, ok := p.decoded.Load(path)
	return ok
}

// PlayBuffer plays buf and blocks until it has drained or ctx is done.
func (p *SpeakerPlayer) PlayBuffer(ctx context.Context, buf *beep.Buffer) error {
	if buf == nil || buf.Len() == 0 {
		return nil
	}

	src := buf.Format().SampleRate
	rate, volume, err := p.open(src)
	if err != nil {
		return err
	}

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if src != rate {
		s = beep.Resample(4, src, rate, s)
	}
	if volume < 1 {
		s = &effects.Volume{
			Streamer: s,
			Base:     10,
			Volume:   gain(volume) / 20,
			Silent:   volume == 0,
		}
	}

	// Each playback owns its Ctrl so cancelling one leaves the others
	// in the mix untouched.
	ctrl := &beep.Ctrl{Streamer: s}
	drained := make(chan struct{})
	var once sync.Once
	finish := func() { once.Do(func() { close(drained) }) }
	p.out.Play(beep.Seq(ctrl, beep.Callback(finish)))

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		p.out.Lock()
		ctrl.Streamer = nil
		p.out.Unlock()
		finish()
		return ctx.Err()
	}
}

// open initialises the speaker once and reports its rate and the volume.
func (p *SpeakerPlayer) open(rate beep.SampleRate) (beep.SampleRate, float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.rate == 0 {
		if err := p.out.Init(rate, rate.N(speakerLatency)); err != nil {
			return 0, 0, fmt.Errorf("%w: failed to initialize speaker: %w", ErrNoPlayer, err)
		}
		p.rate = rate
		p.logger.Debug("speaker opened", "sample_rate", int(rate))
	}
	return p.rate, p.volume, nil
}

// Close stops playback, closes the speaker and drops decoded files.
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	if p.rate != 0 {
		p.out.Close()
		p.rate = 0
	}
	p.mu.Unlock()

	p.Reset()
}

// gain converts a linear volume in 0..1 to decibels; 0.5 is about -6 dB.
func gain(volume float64) float64 {
	if volume <= 0 {
		return -100
	}
	return 20 * math.Log10(volume)
}
