package domain

import (
	"context"
	"errors"
)

type Service interface {
	// List returns all messages, newest first.
	List(ctx context.Context) ([]Message, error)
	Create(ctx context.Context, req CreateRequest) (*Message, error)
	// MarkRead flips an unread message to read; marking a read message again
	// is a no-op.
	MarkRead(ctx context.Context, id string) (*Message, error)
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Content   string `json:"content"`
}

var (
	ErrMissingFields = errors.New("missing_fields")
	ErrNotFound      = errors.New("not_found")
)
