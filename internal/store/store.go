package store

import "errors"

var ErrNotFound = errors.New("not_found")

// Collection is the persistence contract every catalog resource is built on.
// A collection is an ordered set of same-shaped records backed by a single
// serialized blob; every mutation is a full read-modify-write over that blob.
// Partial-update semantics belong to the services, expressed through the
// apply func handed to Update.
type Collection[T any] interface {
	GetAll() ([]T, error)
	SaveAll(items []T) error
	Add(item T) (T, error)
	Update(match func(T) bool, apply func(T) T) (T, error)
	Delete(match func(T) bool) (bool, error)
	Find(match func(T) bool) (*T, error)
}

// Single holds exactly one record. There is no merge primitive here; callers
// that need partial saves read, merge and save wholesale.
type Single[T any] interface {
	Get() (T, error)
	Save(value T) error
}
