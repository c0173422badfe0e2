package catalog

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureDir(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("x"), 0644))
	}
	return dir
}

func TestCatalog_List(t *testing.T) {
	dir := fixtureDir(t, "Submarine.aiff", "glass.aiff", "Basso.aiff", "readme.txt", "Tink.AIFF")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Nested.aiff"), 0755))

	sounds, err := New(dir, ".aiff").List()
	require.NoError(t, err)

	require.Len(t, sounds, 4)
	assert.Equal(t, "Basso", sounds[0].Name)
	assert.Equal(t, "glass", sounds[1].Name)
	assert.Equal(t, "Submarine", sounds[2].Name)
	assert.Equal(t, "Tink", sounds[3].Name)
	assert.Equal(t, filepath.Join(dir, "Basso.aiff"), sounds[0].Path)
	assert.Equal(t, int64(1), sounds[0].Size)
	assert.False(t, sounds[0].ModTime.IsZero())
}

func TestCatalog_ExtensionWithoutDot(t *testing.T) {
	dir := fixtureDir(t, "complete.oga", "bell.ogg")

	names, err := New(dir, "oga").Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"complete"}, names)
}

func TestCatalog_MissingDir(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "nope"), ".aiff")

	sounds, err := c.List()
	require.NoError(t, err)
	assert.Empty(t, sounds)

	_, err = c.Lookup("Glass")
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestCatalog_Lookup(t *testing.T) {
	dir := fixtureDir(t, "Submarine.aiff", "Glass.aiff", "Basso.aiff")
	c := New(dir, ".aiff")

	t.Run("exact", func(t *testing.T) {
		s, err := c.Lookup("Glass")
		require.NoError(t, err)
		assert.Equal(t, "Glass", s.Name)
		assert.Equal(t, filepath.Join(dir, "Glass.aiff"), s.Path)
	})

	t.Run("case insensitive", func(t *testing.T) {
		s, err := c.Lookup("submarine")
		require.NoError(t, err)
		assert.Equal(t, "Submarine", s.Name)
	})

	t.Run("not found lists alternatives", func(t *testing.T) {
		_, err := c.Lookup("Foghorn")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NotErrorIs(t, err, ErrEmptyCatalog)

		var nf *NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, "Foghorn", nf.Name)
		assert.Equal(t, []string{"Basso", "Glass", "Submarine"}, nf.Alternatives)
		assert.Equal(t, `sound "Foghorn" not found. Try one of: Basso, Glass, Submarine`, err.Error())
	})
}

func TestCatalog_EmptyCatalog(t *testing.T) {
	c := New(fixtureDir(t, "readme.txt"), ".aiff")

	_, err := c.Lookup("Glass")
	assert.ErrorIs(t, err, ErrEmptyCatalog)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = c.Random(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestCatalog_Random(t *testing.T) {
	dir := fixtureDir(t, "Pop.aiff", "Purr.aiff", "Tink.aiff")
	c := New(dir, ".aiff")

	r := rand.New(rand.NewPCG(1, 2))
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		s, err := c.Random(r)
		require.NoError(t, err)
		seen[s.Name] = true
	}
	assert.Len(t, seen, 3)

	s, err := c.Random(nil)
	require.NoError(t, err)
	assert.Contains(t, []string{"Pop", "Purr", "Tink"}, s.Name)
}
