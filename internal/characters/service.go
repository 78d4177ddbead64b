package characters

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"vanquish/pkg/models"
	"vanquish/pkg/sorting"
)

// publisherNames maps universe slugs to the publisher strings stored on
// character records.
var publisherNames = map[string]string{
	"marvel": "Marvel Comics",
	"dc":     "DC Comics",
}

// Service holds the character data access functions. Every operation tries
// the live provider first and silently degrades to the bundled dataset;
// callers never see a provider error, only which branch served them.
type Service struct {
	provider *Provider
	log      *zap.Logger
}

func NewService(p *Provider, log *zap.Logger) *Service {
	return &Service{provider: p, log: log}
}

type ListOptions struct {
	SortBy    string
	Direction sorting.Direction
	Page      sorting.Page
}

// List returns characters sorted and paginated. The returned bool reports
// whether the fallback dataset was used.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]models.Character, bool) {
	cmp := comparatorFor(opts.SortBy)

	live, err := s.provider.List(ctx, opts.Page.Offset)
	if err == nil && len(live) > 0 {
		s.log.Info("characters list served live",
			zap.Int("count", len(live)), zap.String("sort_by", opts.SortBy))
		// The provider already consumed the offset; only the limit applies.
		return sorting.Apply(live, cmp, opts.Direction, sorting.Page{Limit: opts.Page.Limit}), false
	}

	s.log.Warn("characters list falling back", zap.Error(err))
	return sorting.Apply(Fallback(), cmp, opts.Direction, opts.Page), true
}

// Search returns characters matching query. Zero live results count as a
// failure and trigger the fallback, filtered with the same query.
func (s *Service) Search(ctx context.Context, query string, opts ListOptions) ([]models.Character, bool) {
	cmp := comparatorFor(opts.SortBy)

	live, err := s.provider.Search(ctx, query)
	if err == nil && len(live) > 0 {
		s.log.Info("character search served live",
			zap.String("query", query), zap.Int("count", len(live)))
		return sorting.Apply(live, cmp, opts.Direction, opts.Page), false
	}

	s.log.Warn("character search falling back",
		zap.String("query", query), zap.Error(err))

	matched := filterFallback(query)
	if len(matched) == 0 && strings.Contains(strings.ToLower(query), "silver") {
		// Legacy demo behavior: this record exists only in search results.
		matched = append(matched, silverSable())
	}
	return sorting.Apply(matched, cmp, opts.Direction, opts.Page), true
}

// GetByID returns a single character, or nil when the id exists in neither
// the provider nor the fallback dataset.
func (s *Service) GetByID(ctx context.Context, id string) (*models.Character, bool) {
	live, err := s.provider.Get(ctx, id)
	if err == nil && live != nil {
		return live, false
	}

	s.log.Warn("character lookup falling back", zap.String("id", id), zap.Error(err))
	for _, c := range Fallback() {
		if c.ID == id {
			return &c, true
		}
	}
	return nil, true
}

// ByPublisher serves the universe view. It reads the fallback dataset only;
// the live provider has no publisher listing worth the call.
func (s *Service) ByPublisher(slug string) ([]models.Character, bool) {
	name, ok := publisherNames[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return nil, false
	}

	var out []models.Character
	for _, c := range Fallback() {
		if c.Biography.Publisher == name {
			out = append(out, c)
		}
	}
	return out, true
}

func filterFallback(query string) []models.Character {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.Character
	for _, c := range Fallback() {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Biography.FullName), q) ||
			strings.Contains(strings.ToLower(c.Biography.Publisher), q) {
			out = append(out, c)
		}
	}
	return out
}

// comparatorFor resolves a sort key. Unknown keys sort by name.
func comparatorFor(sortBy string) func(a, b models.Character) int {
	switch sortBy {
	case "power":
		return sorting.Numeric(func(c models.Character) string { return c.Powerstats.Power })
	case "intelligence":
		return sorting.Numeric(func(c models.Character) string { return c.Powerstats.Intelligence })
	case "publisher":
		return sorting.Text(func(c models.Character) string { return c.Biography.Publisher })
	case "alignment":
		return sorting.Text(func(c models.Character) string { return c.Biography.Alignment })
	default:
		return sorting.Text(func(c models.Character) string { return c.Name })
	}
}
