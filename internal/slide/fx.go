package slide

import (
	"github.com/fakunet/backoffice/internal/config"
	"github.com/fakunet/backoffice/internal/slide/domain"
	"github.com/fakunet/backoffice/internal/slide/service"
	"github.com/fakunet/backoffice/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("slide.service",
	fx.Provide(provideStore),
	fx.Provide(service.New),
)

func provideStore(cfg config.Config, log *zap.Logger) store.Collection[domain.Slide] {
	return store.NewFile[domain.Slide](cfg.CollectionPath("slider"), log)
}
