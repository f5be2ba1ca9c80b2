package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// File is a Collection backed by a single JSON file. Reads degrade to an
// empty collection when the file is corrupt; writes go through a temp file
// and rename so a concurrent reader never observes a half-written blob.
// The mutex serializes read-modify-write cycles within the process.
type File[T any] struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger
}

func NewFile[T any](path string, log *zap.Logger) *File[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &File[T]{
		path: path,
		log:  log.Named("store.file").With(zap.String("path", path)),
	}
}

func (f *File[T]) GetAll() ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

func (f *File[T]) SaveAll(items []T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.persist(items)
}

func (f *File[T]) Add(item T) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load()
	if err != nil {
		return item, err
	}
	items = append(items, item)
	if err := f.persist(items); err != nil {
		return item, err
	}
	return item, nil
}

func (f *File[T]) Update(match func(T) bool, apply func(T) T) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var zero T
	items, err := f.load()
	if err != nil {
		return zero, err
	}
	for i, item := range items {
		if !match(item) {
			continue
		}
		items[i] = apply(item)
		if err := f.persist(items); err != nil {
			return zero, err
		}
		return items[i], nil
	}
	return zero, ErrNotFound
}

func (f *File[T]) Delete(match func(T) bool) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load()
	if err != nil {
		return false, err
	}
	kept := items[:0:0]
	for _, item := range items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}
	if err := f.persist(kept); err != nil {
		return false, err
	}
	return true, nil
}

func (f *File[T]) Find(match func(T) bool) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if match(items[i]) {
			return &items[i], nil
		}
	}
	return nil, nil
}

// load reads the backing file, lazily creating it on first touch. Corrupt
// content is reported and degraded to an empty collection; the store never
// takes the caller down with it.
func (f *File[T]) load() ([]T, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read collection: %w", err)
		}
		if err := f.persist(nil); err != nil {
			return nil, err
		}
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		f.log.Error("corrupt collection file, returning empty collection", zap.Error(err))
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (f *File[T]) persist(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	return writeFileAtomic(f.path, data)
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace collection file: %w", err)
	}
	return nil
}
