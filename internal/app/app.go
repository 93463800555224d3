package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/pautadigital/noticias-api/config"
	"github.com/pautadigital/noticias-api/internal/auth"
	"github.com/pautadigital/noticias-api/internal/db"
	"github.com/pautadigital/noticias-api/internal/noticias"
	"github.com/pautadigital/noticias-api/internal/rest"
	"github.com/pautadigital/noticias-api/internal/rpc"
)

type App struct {
	Repo   *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config config.Config
}

func New(cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	repo := db.New(dbConnect)
	manager := noticias.NewManager(repo, logger)
	authService := auth.NewService(repo, cfg.Auth.Secret, cfg.Auth.TokenTTL.Duration, logger)
	handler := rest.NewHandler(manager, authService, logger)

	e := handler.RegisterRoutes()
	e.Any("/rpc", echo.WrapHandler(rpc.New(logger, manager)))

	return &App{
		Repo:   repo,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
