package domain

import (
	"context"
	"errors"
)

type Service interface {
	List(ctx context.Context) ([]Slide, error)
	Create(ctx context.Context, req CreateRequest) (*Slide, error)
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	ImageURL string `json:"image_url"`
}

var (
	ErrInvalidImageURL = errors.New("invalid_image_url")
	ErrNotFound        = errors.New("not_found")
)
