// Package catalog enumerates the sounds available in a directory and
// resolves sound names to files.
package catalog

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

var (
	// ErrNotFound matches lookups for a name with no sound.
	ErrNotFound = errors.New("sound not found")

	// ErrEmptyCatalog is returned when the directory holds no sounds.
	ErrEmptyCatalog = errors.New("no sounds found")
)

// NotFoundError reports an unknown sound name along with the valid ones.
type NotFoundError struct {
	Name         string
	Alternatives []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("sound %q not found. Try one of: %s", e.Name, strings.Join(e.Alternatives, ", "))
}

// Is makes errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Sound is a playable file in the catalog.
type Sound struct {
	Name    string    `json:"name" yaml:"name"`
	Path    string    `json:"path" yaml:"path"`
	Size    int64     `json:"size" yaml:"size"`
	ModTime time.Time `json:"mod_time" yaml:"mod_time"`
}

// Catalog lists sounds with a given extension in one directory.
type Catalog struct {
	dir string
	ext string
}

// New creates a catalog over dir. ext may be given with or without the
// leading dot and is matched case-insensitively.
func New(dir, ext string) *Catalog {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &Catalog{dir: dir, ext: ext}
}

// List returns the sounds sorted by name. A missing directory is an
// empty catalog.
func (c *Catalog) List() ([]Sound, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read sound directory: %w", err)
	}

	var sounds []Sound
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		fileExt := filepath.Ext(entry.Name())
		if !strings.EqualFold(fileExt, c.ext) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// Removed between ReadDir and Info
			continue
		}

		sounds = append(sounds, Sound{
			Name:    strings.TrimSuffix(entry.Name(), fileExt),
			Path:    filepath.Join(c.dir, entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(sounds, func(i, j int) bool {
		return strings.ToLower(sounds[i].Name) < strings.ToLower(sounds[j].Name)
	})

	return sounds, nil
}

// Names returns the sorted sound names.
func (c *Catalog) Names() ([]string, error) {
	sounds, err := c.List()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(sounds))
	for i, s := range sounds {
		names[i] = s.Name
	}
	return names, nil
}

// Lookup finds a sound by name, ignoring case.
func (c *Catalog) Lookup(name string) (Sound, error) {
	sounds, err := c.List()
	if err != nil {
		return Sound{}, err
	}
	if len(sounds) == 0 {
		return Sound{}, fmt.Errorf("%w in %s", ErrEmptyCatalog, c.dir)
	}

	for _, s := range sounds {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}

	alternatives := make([]string, len(sounds))
	for i, s := range sounds {
		alternatives[i] = s.Name
	}
	return Sound{}, &NotFoundError{Name: name, Alternatives: alternatives}
}

// Random picks a sound uniformly. r may be nil.
func (c *Catalog) Random(r *rand.Rand) (Sound, error) {
	sounds, err := c.List()
	if err != nil {
		return Sound{}, err
	}
	if len(sounds) == 0 {
		return Sound{}, fmt.Errorf("%w in %s", ErrEmptyCatalog, c.dir)
	}

	if r == nil {
		return sounds[rand.IntN(len(sounds))], nil
	}
	return sounds[r.IntN(len(sounds))], nil
}
