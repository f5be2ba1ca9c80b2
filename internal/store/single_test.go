package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type settings struct {
	Name  string `json:"name"`
	Limit int    `json:"limit"`
}

func TestSingleGetReturnsFallbackWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s := NewSingleFile(path, settings{Name: "default", Limit: 10}, zap.NewNop())

	value, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, settings{Name: "default", Limit: 10}, value)

	// the fallback is not persisted
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSingleGetReturnsFallbackOnCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))
	s := NewSingleFile(path, settings{Name: "default"}, zap.NewNop())

	value, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, "default", value.Name)
}

func TestSingleSaveReplacesStoredValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s := NewSingleFile(path, settings{}, zap.NewNop())

	require.NoError(t, s.Save(settings{Name: "first", Limit: 1}))
	require.NoError(t, s.Save(settings{Name: "second", Limit: 2}))

	value, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, settings{Name: "second", Limit: 2}, value)
}
