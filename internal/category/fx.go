package category

import (
	"github.com/fakunet/backoffice/internal/category/domain"
	"github.com/fakunet/backoffice/internal/category/service"
	"github.com/fakunet/backoffice/internal/config"
	"github.com/fakunet/backoffice/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("category.service",
	fx.Provide(provideStore),
	fx.Provide(service.New),
)

func provideStore(cfg config.Config, log *zap.Logger) store.Collection[domain.Category] {
	return store.NewFile[domain.Category](cfg.CollectionPath("categories"), log)
}
