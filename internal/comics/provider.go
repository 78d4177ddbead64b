package comics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"vanquish/pkg/models"
)

// Publisher tags the catalogs the comics provider can list.
type Publisher string

const (
	PublisherMarvel      Publisher = "marvel"
	PublisherDC          Publisher = "dc"
	PublisherImage       Publisher = "image"
	PublisherDarkHorse   Publisher = "dark horse"
	PublisherBoomStudios Publisher = "boom studios"
	PublisherIDW         Publisher = "idw"
	PublisherDynamite    Publisher = "dynamite"
)

// publisherPaths is the complete publisher→endpoint table, resolved at
// compile time. Unknown publishers fall through to the latest feed.
var publisherPaths = map[Publisher]string{
	PublisherMarvel:      "marvel",
	PublisherDC:          "dc",
	PublisherImage:       "image",
	PublisherDarkHorse:   "dark-horse",
	PublisherBoomStudios: "boom-studios",
	PublisherIDW:         "idw",
	PublisherDynamite:    "dynamite",
}

// ResolvePublisher normalizes a query-parameter publisher. ok is false for
// names outside the table.
func ResolvePublisher(s string) (Publisher, bool) {
	p := Publisher(normalizeName(s))
	_, ok := publisherPaths[p]
	return p, ok
}

func normalizeName(s string) string {
	out := make([]rune, 0, len(s))
	prevSpace := false
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
			prevSpace = false
		case r == ' ' || r == '-' || r == '_':
			if !prevSpace && len(out) > 0 {
				out = append(out, ' ')
			}
			prevSpace = true
		default:
			out = append(out, r)
			prevSpace = false
		}
	}
	for len(out) > 0 && out[len(out)-1] == ' ' {
		out = out[:len(out)-1]
	}
	return string(out)
}

// Provider is the comics-database HTTP client. Responses are arrays of
// scraped records; transform.go turns them into Comic values.
type Provider struct {
	BaseURL string
	Client  *http.Client
}

func NewProvider(baseURL string) *Provider {
	return &Provider{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 12 * time.Second},
	}
}

type rawComic struct {
	Title         string            `json:"title"`
	CoverPage     string            `json:"coverPage"`
	Description   string            `json:"description"`
	DownloadLinks map[string]string `json:"downloadLinks"`
	Information   map[string]any    `json:"information"`
}

// Latest fetches one page of the newest releases.
func (p *Provider) Latest(ctx context.Context, page int) ([]models.Comic, error) {
	return p.fetch(ctx, p.BaseURL+"/comics/latest?page="+strconv.Itoa(page))
}

// ByPublisher fetches one page of a publisher catalog. Publishers outside
// the table serve the latest feed.
func (p *Provider) ByPublisher(ctx context.Context, pub Publisher, page int) ([]models.Comic, error) {
	path, ok := publisherPaths[pub]
	if !ok {
		return p.Latest(ctx, page)
	}
	return p.fetch(ctx, p.BaseURL+"/comics/"+path+"?page="+strconv.Itoa(page))
}

// Search fetches one page of search results.
func (p *Provider) Search(ctx context.Context, query string, page int) ([]models.Comic, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("page", strconv.Itoa(page))
	return p.fetch(ctx, p.BaseURL+"/comics/search?"+q.Encode())
}

func (p *Provider) fetch(ctx context.Context, rawURL string) ([]models.Comic, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("comics: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("comics: request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("comics: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("comics: status %d", resp.StatusCode)
	}

	var raws []rawComic
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, fmt.Errorf("comics: decode: %w", err)
	}
	return transformAll(raws), nil
}
