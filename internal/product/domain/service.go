package domain

import (
	"context"
	"errors"
)

type Service interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, code string) (*Product, error)
	Create(ctx context.Context, req CreateRequest) (*Product, error)
	Update(ctx context.Context, code string, req UpdateRequest) (*Product, error)
}

type CreateRequest struct {
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	Brand       string      `json:"brand"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Features    FeatureList `json:"features"`
	Stock       string      `json:"stock"`
	ImageURL    string      `json:"image_url"`
	PDFURL      string      `json:"pdf_url"`
}

// UpdateRequest carries partial fields. The product code is the update key
// and cannot be changed; any code in the body is ignored.
type UpdateRequest struct {
	Name        *string      `json:"name"`
	Brand       *string      `json:"brand"`
	Category    *string      `json:"category"`
	Description *string      `json:"description"`
	Features    *FeatureList `json:"features"`
	Stock       *string      `json:"stock"`
	ImageURL    *string      `json:"image_url"`
	PDFURL      *string      `json:"pdf_url"`
	Active      *bool        `json:"active"`
}

var (
	ErrInvalidCode     = errors.New("invalid_code")
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidBrand    = errors.New("invalid_brand")
	ErrInvalidCategory = errors.New("invalid_category")
	ErrCodeExists      = errors.New("code_exists")
	ErrNotFound        = errors.New("not_found")
)
