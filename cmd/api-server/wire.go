//go:build wireinject
// +build wireinject

package main

import (
	"forohub/config"
	"forohub/dao"
	"forohub/handler"
	"forohub/pkg/database"
	"forohub/pkg/server"
	"forohub/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,

		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.AuthHandler), "*"),
		wire.Struct(new(handler.CourseHandler), "*"),
		wire.Struct(new(handler.TopicHandler), "*"),
		wire.Struct(new(handler.ReplyHandler), "*"),

		wire.Struct(new(server.Handlers), "*"),
		server.NewGinEngine,
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
