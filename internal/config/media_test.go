package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMediaSettingsAllowList(t *testing.T) {
	s := DefaultMediaSettings()

	assert.True(t, s.Allows("image/jpeg"))
	assert.True(t, s.Allows("image/jpg"))
	assert.True(t, s.Allows("application/pdf"))
	assert.True(t, s.Allows("IMAGE/PNG"))
	assert.True(t, s.Allows("  image/webp  "))

	assert.False(t, s.Allows("application/x-sh"))
	assert.False(t, s.Allows("text/html"))
	assert.False(t, s.Allows(""))
}

func TestValidateMediaSettings(t *testing.T) {
	assert.NoError(t, validateMediaSettings(DefaultMediaSettings()))
	assert.Error(t, validateMediaSettings(MediaSettings{MaxUploadBytes: 1}))
	assert.Error(t, validateMediaSettings(MediaSettings{
		AllowedTypes: []string{"image/png"},
	}))
}
