package comics

import (
	"context"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"vanquish/pkg/models"
)

// fallbackPageSize mirrors the page size the live provider serves, so the
// fallback dataset paginates the same way.
const fallbackPageSize = 20

// Service holds the comic data access functions. Live calls run through a
// circuit breaker: after three consecutive failures the circuit opens and
// every operation serves the fallback dataset until the breaker lets a
// probe through again. Callers never see a provider error.
//
// The breaker runs on real time. Tests cover the fallback path by pointing
// the provider at a dead endpoint rather than by driving breaker timers.
type Service struct {
	provider *Provider
	log      *zap.Logger
	cb       *gobreaker.CircuitBreaker[[]models.Comic]
}

func NewService(p *Provider, log *zap.Logger) *Service {
	s := &Service{provider: p, log: log}
	s.cb = gobreaker.NewCircuitBreaker[[]models.Comic](gobreaker.Settings{
		Name:        "comics-provider",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     5 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("comics provider breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	return s
}

// Latest returns one page of the newest comics. The bool reports whether
// the fallback dataset was used.
func (s *Service) Latest(ctx context.Context, page int) ([]models.Comic, bool) {
	live, err := s.cb.Execute(func() ([]models.Comic, error) {
		return s.provider.Latest(ctx, normalizePage(page))
	})
	if err == nil && len(live) > 0 {
		s.log.Info("comics latest served live", zap.Int("page", page), zap.Int("count", len(live)))
		return live, false
	}

	s.log.Warn("comics latest falling back", zap.Int("page", page), zap.Error(err))
	return fallbackPage(Fallback(), page), true
}

// ByPublisher returns one page of a publisher catalog. Publisher names
// outside the strategy table serve the latest feed, matching the
// provider's own default.
func (s *Service) ByPublisher(ctx context.Context, publisher string, page int) ([]models.Comic, bool) {
	pub, known := ResolvePublisher(publisher)

	live, err := s.cb.Execute(func() ([]models.Comic, error) {
		if !known {
			return s.provider.Latest(ctx, normalizePage(page))
		}
		return s.provider.ByPublisher(ctx, pub, normalizePage(page))
	})
	if err == nil && len(live) > 0 {
		s.log.Info("comics by publisher served live",
			zap.String("publisher", string(pub)), zap.Int("count", len(live)))
		return live, false
	}

	s.log.Warn("comics by publisher falling back",
		zap.String("publisher", publisher), zap.Error(err))
	return fallbackPage(filterFallbackPublisher(pub), page), true
}

// Search returns one page of comics matching query.
func (s *Service) Search(ctx context.Context, query string, page int) ([]models.Comic, bool) {
	live, err := s.cb.Execute(func() ([]models.Comic, error) {
		return s.provider.Search(ctx, query, normalizePage(page))
	})
	if err == nil && len(live) > 0 {
		s.log.Info("comic search served live",
			zap.String("query", query), zap.Int("count", len(live)))
		return live, false
	}

	s.log.Warn("comic search falling back", zap.String("query", query), zap.Error(err))
	return fallbackPage(filterFallbackQuery(query), page), true
}

// GetByID resolves a single comic. Live results are scanned across the
// feeds a record can appear in; misses degrade to the fallback dataset and
// finally to a placeholder record. There is no not-found outcome.
func (s *Service) GetByID(ctx context.Context, id int) models.Comic {
	if s.cb.State() != gobreaker.StateOpen {
		feeds := []func() ([]models.Comic, error){
			func() ([]models.Comic, error) { return s.provider.Latest(ctx, 1) },
			func() ([]models.Comic, error) { return s.provider.ByPublisher(ctx, PublisherMarvel, 1) },
			func() ([]models.Comic, error) { return s.provider.ByPublisher(ctx, PublisherDC, 1) },
			func() ([]models.Comic, error) { return s.provider.ByPublisher(ctx, PublisherImage, 1) },
		}
		for _, feed := range feeds {
			comics, err := s.cb.Execute(feed)
			if err != nil {
				continue
			}
			for _, c := range comics {
				if c.ID == id {
					s.log.Info("comic lookup served live", zap.Int("id", id))
					return c
				}
			}
		}
	}

	for _, c := range Fallback() {
		if c.ID == id {
			s.log.Info("comic lookup served from fallback", zap.Int("id", id))
			return c
		}
	}

	s.log.Warn("comic lookup returning placeholder", zap.Int("id", id))
	return Placeholder(id)
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func fallbackPage(items []models.Comic, page int) []models.Comic {
	page = normalizePage(page)
	start := (page - 1) * fallbackPageSize
	if start >= len(items) {
		return []models.Comic{}
	}
	end := start + fallbackPageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// filterFallbackPublisher keeps fallback comics whose title or description
// mentions the publisher. Only the publishers the dataset actually covers
// filter; the rest return the whole set.
func filterFallbackPublisher(pub Publisher) []models.Comic {
	var keyword string
	switch pub {
	case PublisherMarvel:
		keyword = "marvel"
	case PublisherDC:
		keyword = "dc"
	case PublisherImage:
		keyword = "image"
	default:
		return Fallback()
	}

	var out []models.Comic
	for _, c := range Fallback() {
		if strings.Contains(strings.ToLower(c.Title), keyword) ||
			strings.Contains(strings.ToLower(c.Description), keyword) {
			out = append(out, c)
		}
	}
	return out
}

func filterFallbackQuery(query string) []models.Comic {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.Comic
	for _, c := range Fallback() {
		if strings.Contains(strings.ToLower(c.Title), q) ||
			strings.Contains(strings.ToLower(c.Description), q) {
			out = append(out, c)
		}
	}
	return out
}
