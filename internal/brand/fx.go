package brand

import (
	"github.com/fakunet/backoffice/internal/brand/domain"
	"github.com/fakunet/backoffice/internal/brand/service"
	"github.com/fakunet/backoffice/internal/config"
	"github.com/fakunet/backoffice/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("brand.service",
	fx.Provide(provideStore),
	fx.Provide(service.New),
)

func provideStore(cfg config.Config, log *zap.Logger) store.Collection[domain.Brand] {
	return store.NewFile[domain.Brand](cfg.CollectionPath("brands"), log)
}
