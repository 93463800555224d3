package rpc

import (
	"context"
	"errors"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/pautadigital/noticias-api/internal/noticias"
)

//go:generate zenrpc

// NewsService provides read-only RPC methods over the news catalog.
type NewsService struct {
	zenrpc.Service
	manager *noticias.Manager
}

func NewNewsService(manager *noticias.Manager) *NewsService {
	return &NewsService{manager: manager}
}

// List retrieves a page of news with an optional category filter, sorted by
// createdAt DESC, with total-page metadata.
//
//zenrpc:filter listing filter and pagination
//zenrpc:return page of news
//zenrpc:500 internal server error
func (s *NewsService) List(ctx context.Context, filter NewsFilter) (NewsPage, error) {
	page, limit := filter.pageParams()

	result, err := s.manager.NewsByFilter(ctx, filter.Category, nil, page, limit)
	if err != nil {
		return NewsPage{}, err
	}

	return NewNewsPage(result), nil
}

// ByID retrieves a single news item with its comments resolved.
//
//zenrpc:id news numeric ID
//zenrpc:return news with comments
//zenrpc:400 id must be positive
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s *NewsService) ByID(ctx context.Context, id int) (*News, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	result, err := s.manager.NewsByID(ctx, id)
	if errors.Is(err, noticias.ErrNotFound) {
		return nil, zenrpc.NewStringError(404, "news not found")
	} else if err != nil {
		return nil, err
	}

	news := NewNews(*result)
	return &news, nil
}

// FrontPage assembles the front-page digest: scored recent news, latest
// news, the exclusive highlight and random category samples.
//
//zenrpc:return front-page digest
//zenrpc:500 internal server error
func (s *NewsService) FrontPage(ctx context.Context) (Digest, error) {
	digest, err := s.manager.FrontPage(ctx)
	if err != nil {
		return Digest{}, err
	}

	return NewDigest(digest), nil
}
