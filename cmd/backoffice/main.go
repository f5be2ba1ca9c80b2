package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/fakunet/backoffice/internal/analytics"
	"github.com/fakunet/backoffice/internal/auth/session"
	"github.com/fakunet/backoffice/internal/brand"
	"github.com/fakunet/backoffice/internal/category"
	"github.com/fakunet/backoffice/internal/config"
	"github.com/fakunet/backoffice/internal/media"
	"github.com/fakunet/backoffice/internal/message"
	"github.com/fakunet/backoffice/internal/observability"
	"github.com/fakunet/backoffice/internal/product"
	"github.com/fakunet/backoffice/internal/server"
	"github.com/fakunet/backoffice/internal/slide"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		session.Module,

		brand.Module,
		category.Module,
		product.Module,
		slide.Module,
		message.Module,
		media.Module,
		analytics.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
