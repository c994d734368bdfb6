//go:build wireinject
// +build wireinject

package main

import (
	"Memo/config"
	"Memo/dao"
	"Memo/dao/cache"
	"Memo/handler"
	"Memo/pkg/client"
	"Memo/pkg/database"
	"Memo/pkg/server"
	"Memo/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Note), "*"),
		wire.Struct(new(handler.NoteShare), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
