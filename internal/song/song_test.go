package song

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, DefaultID, s.ID)
	assert.InDelta(t, 2.4, s.Ticks[0], 1e-9, "first tick after four beats of lead-in")
	assert.Greater(t, s.Duration(), 60.0)
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Song{BPM: 0, Ticks: []float64{1}}.Validate(), ErrInvalidBPM)
	assert.ErrorIs(t, Song{BPM: 120}.Validate(), ErrNoTicks)
	assert.Error(t, Song{BPM: 120, Ticks: []float64{1, 0.5}}.Validate())
	assert.Error(t, Song{BPM: 120, Ticks: []float64{-1}}.Validate())
	assert.NoError(t, Song{BPM: 120, Ticks: []float64{0.5, 0.5, 1}}.Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"id":"demo","bpm":120,"ticks":[0.5,1,1.5]}`), 0o644))
	s, err := Load(good)
	require.NoError(t, err)
	assert.Equal(t, "demo", s.ID)
	assert.Equal(t, []float64{0.5, 1, 1.5}, s.Ticks)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"id":"demo","bpm":-1,"ticks":[1]}`), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalidBPM)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
