package product

import (
	"github.com/fakunet/backoffice/internal/config"
	"github.com/fakunet/backoffice/internal/product/domain"
	"github.com/fakunet/backoffice/internal/product/service"
	"github.com/fakunet/backoffice/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("product.service",
	fx.Provide(provideStore),
	fx.Provide(service.New),
)

// The collection file keeps its historical name so existing catalogs load
// without migration.
func provideStore(cfg config.Config, log *zap.Logger) store.Collection[domain.Product] {
	return store.NewFile[domain.Product](cfg.CollectionPath("productos_fakunet"), log)
}
