package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/pautadigital/noticias-api/internal/noticias"
)

func New(logger *slog.Logger, manager *noticias.Manager) *zenrpc.Server {
	rpcService := NewNewsService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("news", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "noticias-api", nil))

	return rpcServer
}
