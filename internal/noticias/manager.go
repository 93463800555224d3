package noticias

import (
	"log/slog"
)

// Manager is the domain core: paginated listings, the news↔comment
// referential integrity rules, the front-page curator and the saved-news
// toggle set.
type Manager struct {
	store Store
	log   *slog.Logger
}

func NewManager(store Store, log *slog.Logger) *Manager {
	return &Manager{
		store: store,
		log:   log,
	}
}
