package domain

import "context"

type ConfigService interface {
	// Get returns the stored configuration with the secret masked.
	Get(ctx context.Context) (MaskedConfig, error)
	// Save merges the request over the stored configuration; empty fields
	// keep their stored value, so a blank private key never clears a
	// configured secret.
	Save(ctx context.Context, req SaveRequest) error
}

type SaveRequest struct {
	PropertyID  string `json:"propertyId"`
	ClientEmail string `json:"clientEmail"`
	PrivateKey  string `json:"privateKey"`
}

type SummaryService interface {
	Summary(ctx context.Context) (*Summary, error)
}
