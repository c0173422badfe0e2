package audio

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/oklog/ulid/v2"
)

// EncodeWAV writes buf to path as a PCM WAV file.
func EncodeWAV(buf *beep.Buffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sound file: %w", err)
	}

	format := buf.Format()
	format.NumChannels = min(max(format.NumChannels, 1), 2)
	if format.Precision < 1 || format.Precision > 3 {
		format.Precision = 2
	}

	if err := wav.Encode(f, buf.Streamer(0, buf.Len()), format); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("failed to encode sound: %w", err)
	}

	return f.Close()
}

// TempPath returns a unique WAV path in dir, or in os.TempDir when dir
// is empty. The file is not created.
func TempPath(dir string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return "", fmt.Errorf("failed to generate temp file name: %w", err)
	}

	return filepath.Join(dir, "mactone-"+id.String()+".wav"), nil
}
