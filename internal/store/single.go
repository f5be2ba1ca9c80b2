package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
)

// SingleFile persists exactly one record to a JSON file. Get falls back to
// the configured default when the file is missing or unreadable; Save
// replaces the stored value wholesale.
type SingleFile[T any] struct {
	mu       sync.Mutex
	path     string
	fallback T
	log      *zap.Logger
}

func NewSingleFile[T any](path string, fallback T, log *zap.Logger) *SingleFile[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &SingleFile[T]{
		path:     path,
		fallback: fallback,
		log:      log.Named("store.single").With(zap.String("path", path)),
	}
}

func (s *SingleFile[T]) Get() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error("read config file", zap.Error(err))
		}
		return s.fallback, nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		s.log.Error("corrupt config file, returning default", zap.Error(err))
		return s.fallback, nil
	}
	return value, nil
}

func (s *SingleFile[T]) Save(value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return writeFileAtomic(s.path, data)
}
