package domain

import (
	"context"
	"errors"
)

type Service interface {
	List(ctx context.Context) ([]Brand, error)
	Create(ctx context.Context, req CreateRequest) (*Brand, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Brand, error)
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	Name string `json:"name"`
}

type UpdateRequest struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrNotFound    = errors.New("not_found")
)
