package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// MediaSettings governs uploaded-file handling. It lives in an optional
// media.yml next to the binary (or under /etc/backoffice) so the allow-list
// can change without a redeploy.
type MediaSettings struct {
	AllowedTypes   []string `mapstructure:"allowedTypes"`
	MaxUploadBytes int64    `mapstructure:"maxUploadBytes"`
}

func DefaultMediaSettings() MediaSettings {
	return MediaSettings{
		AllowedTypes: []string{
			"image/jpeg",
			"image/png",
			"image/webp",
			"image/svg+xml",
			"image/jpg",
			"application/pdf",
		},
		MaxUploadBytes: 20 << 20,
	}
}

// Allows reports whether the declared content type is on the allow-list.
func (s MediaSettings) Allows(contentType string) bool {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	for _, allowed := range s.AllowedTypes {
		if strings.EqualFold(strings.TrimSpace(allowed), contentType) {
			return true
		}
	}
	return false
}

type MediaSettingsHolder struct {
	current atomic.Value // holds MediaSettings
}

func NewMediaSettingsHolder() (*MediaSettingsHolder, error) {
	v := viper.New()

	v.SetConfigName("media")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/backoffice")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BACKOFFICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	fileFound := true
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		fileFound = false
	}

	settings := DefaultMediaSettings()
	if fileFound {
		var loaded MediaSettings
		if err := v.UnmarshalKey("media", &loaded); err != nil {
			return nil, err
		}
		if err := validateMediaSettings(loaded); err != nil {
			return nil, err
		}
		settings = loaded
	}

	holder := &MediaSettingsHolder{}
	holder.current.Store(settings)

	if fileFound {
		v.WatchConfig()
		v.OnConfigChange(func(e fsnotify.Event) {
			var updated MediaSettings
			if err := v.UnmarshalKey("media", &updated); err != nil {
				log.Printf("[media-config] reload failed: %v", err)
				return
			}
			if err := validateMediaSettings(updated); err != nil {
				log.Printf("[media-config] invalid config ignored: %v", err)
				return
			}
			holder.current.Store(updated)
			log.Printf("[media-config] reloaded from %s", e.Name)
		})
	}

	return holder, nil
}

// NewStaticMediaSettingsHolder wraps fixed settings without file watching.
func NewStaticMediaSettingsHolder(s MediaSettings) *MediaSettingsHolder {
	holder := &MediaSettingsHolder{}
	holder.current.Store(s)
	return holder
}

func (h *MediaSettingsHolder) Get() MediaSettings {
	return h.current.Load().(MediaSettings)
}

func validateMediaSettings(s MediaSettings) error {
	if len(s.AllowedTypes) == 0 {
		return errors.New("media.allowedTypes must not be empty")
	}
	if s.MaxUploadBytes <= 0 {
		return errors.New("media.maxUploadBytes must be positive")
	}
	return nil
}
