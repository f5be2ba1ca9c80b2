package message

import (
	"github.com/fakunet/backoffice/internal/config"
	"github.com/fakunet/backoffice/internal/message/domain"
	"github.com/fakunet/backoffice/internal/message/service"
	"github.com/fakunet/backoffice/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("message.service",
	fx.Provide(provideStore),
	fx.Provide(service.New),
)

func provideStore(cfg config.Config, log *zap.Logger) store.Collection[domain.Message] {
	return store.NewFile[domain.Message](cfg.CollectionPath("messages"), log)
}
