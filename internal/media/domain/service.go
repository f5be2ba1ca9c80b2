package domain

import (
	"context"
	"errors"
)

type Service interface {
	// List returns all stored files, newest first.
	List(ctx context.Context) ([]FileInfo, error)
	Upload(ctx context.Context, req UploadRequest) (*UploadResult, error)
	Delete(ctx context.Context, filename string) error
}

type UploadRequest struct {
	Filename    string
	ContentType string
	Data        []byte
}

var (
	ErrNoFile          = errors.New("no_file")
	ErrUnsupportedType = errors.New("unsupported_type")
	ErrTooLarge        = errors.New("too_large")
	ErrNotFound        = errors.New("not_found")
)
