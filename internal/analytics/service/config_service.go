package service

import (
	"context"
	"strings"

	"github.com/fakunet/backoffice/internal/analytics/domain"
	"github.com/fakunet/backoffice/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ConfigParams struct {
	fx.In

	Log   *zap.Logger
	Store store.Single[domain.Config]
}

type ConfigService struct {
	log   *zap.Logger
	store store.Single[domain.Config]
}

func NewConfig(p ConfigParams) domain.ConfigService {
	return &ConfigService{
		log:   p.Log.Named("analytics.config"),
		store: p.Store,
	}
}

func (s *ConfigService) Get(ctx context.Context) (domain.MaskedConfig, error) {
	_ = ctx
	cfg, err := s.store.Get()
	if err != nil {
		return domain.MaskedConfig{}, err
	}
	return domain.MaskedConfig{
		PropertyID:  cfg.PropertyID,
		ClientEmail: cfg.ClientEmail,
		HasKey:      cfg.PrivateKey != "",
	}, nil
}

func (s *ConfigService) Save(ctx context.Context, req domain.SaveRequest) error {
	_ = ctx
	current, err := s.store.Get()
	if err != nil {
		return err
	}

	merged := domain.Config{
		PropertyID:  mergeField(req.PropertyID, current.PropertyID),
		ClientEmail: mergeField(req.ClientEmail, current.ClientEmail),
		PrivateKey:  mergeField(req.PrivateKey, current.PrivateKey),
	}
	return s.store.Save(merged)
}

// mergeField keeps the stored value when the incoming one is blank.
func mergeField(incoming, current string) string {
	if strings.TrimSpace(incoming) == "" {
		return current
	}
	return incoming
}
