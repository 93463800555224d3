package noticias

import (
	"context"
	"fmt"
	"sort"
	"time"
)

const (
	relevantWindow = 7 * 24 * time.Hour
	relevantLimit  = 6
	recentLimit    = 6
	sampleLimit    = 4

	categoryEsporte = "esporte"
	categoryModa    = "moda"
)

// FrontPage assembles the front-page digest: a scored recent-window list, a
// most-recent list, the latest exclusive article and two random category
// samples. The five parts are independent queries; the digest is advisory
// display data and is not read transactionally.
func (m *Manager) FrontPage(ctx context.Context) (*Digest, error) {
	since := time.Now().Add(-relevantWindow)

	recentWindow, err := m.store.RecentNewsSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("db get recent news: %w", err)
	}
	relevant := rankByScore(NewNewsList(recentWindow), relevantLimit)

	latest, err := m.store.LatestNews(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("db get latest news: %w", err)
	}

	exclusiveRow, err := m.store.LatestExclusiveNews(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get exclusive news: %w", err)
	}
	var exclusive *News
	if exclusiveRow != nil {
		n := NewNews(exclusiveRow)
		exclusive = &n
	}

	esporte, err := m.store.SampleNewsByCategory(ctx, categoryEsporte, sampleLimit)
	if err != nil {
		return nil, fmt.Errorf("db sample esporte news: %w", err)
	}

	moda, err := m.store.SampleNewsByCategory(ctx, categoryModa, sampleLimit)
	if err != nil {
		return nil, fmt.Errorf("db sample moda news: %w", err)
	}

	return &Digest{
		Relevant:  relevant,
		Recent:    NewNewsList(latest),
		Exclusive: exclusive,
		Esporte:   NewNewsList(esporte),
		Moda:      NewNewsList(moda),
	}, nil
}

// rankByScore orders news by likes+comments+views descending, keeping the
// incoming order for ties, and truncates to limit.
func rankByScore(news []News, limit int) []News {
	sort.SliceStable(news, func(i, j int) bool {
		return news[i].Score() > news[j].Score()
	})
	if len(news) > limit {
		news = news[:limit]
	}
	return news
}
