package analytics

import (
	"github.com/fakunet/backoffice/internal/analytics/domain"
	"github.com/fakunet/backoffice/internal/analytics/service"
	"github.com/fakunet/backoffice/internal/config"
	"github.com/fakunet/backoffice/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("analytics.service",
	fx.Provide(provideStore),
	fx.Provide(service.NewConfig),
	fx.Provide(service.NewSummary),
)

func provideStore(cfg config.Config, log *zap.Logger) store.Single[domain.Config] {
	return store.NewSingleFile(cfg.CollectionPath("analytics_config"), domain.Config{}, log)
}
