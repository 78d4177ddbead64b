package characters

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

const fieldList = "id,name,image,deck,description,publisher,powers,gender,origin,real_name,aliases"

// Provider is the character-database HTTP client. It talks the
// status_code/results envelope and maps provider records into the
// Character shape the rest of the app uses.
type Provider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	// PageSize is how many records one list call asks the provider for.
	PageSize int
}

func NewProvider(baseURL, apiKey string) *Provider {
	return &Provider{
		BaseURL:  baseURL,
		APIKey:   apiKey,
		Client:   &http.Client{Timeout: 12 * time.Second},
		PageSize: 100,
	}
}

type listEnvelope struct {
	StatusCode int           `json:"status_code"`
	Results    []apiCharacter `json:"results"`
}

type singleEnvelope struct {
	StatusCode int          `json:"status_code"`
	Results    apiCharacter `json:"results"`
}

type apiCharacter struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Powers struct {
		Intelligence string `json:"intelligence"`
		Strength     string `json:"strength"`
		Speed        string `json:"speed"`
		Durability   string `json:"durability"`
		Power        string `json:"power"`
		Combat       string `json:"combat"`
	} `json:"powers"`
	Gender int `json:"gender"`
	Origin struct {
		PlaceOfBirth string `json:"place_of_birth"`
	} `json:"origin"`
	Publisher struct {
		Name string `json:"name"`
	} `json:"publisher"`
	RealName string `json:"real_name"`
	Aliases  string `json:"aliases"`
	Image    struct {
		MediumURL string `json:"medium_url"`
	} `json:"image"`
}

// List fetches one provider page starting at offset.
func (p *Provider) List(ctx context.Context, offset int) ([]models.Character, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(p.PageSize))
	q.Set("offset", strconv.Itoa(offset))
	return p.fetchList(ctx, q)
}

// Search fetches characters whose name matches query.
func (p *Provider) Search(ctx context.Context, query string) ([]models.Character, error) {
	q := url.Values{}
	q.Set("filter", "name:"+query)
	q.Set("limit", strconv.Itoa(p.PageSize))
	return p.fetchList(ctx, q)
}

func (p *Provider) fetchList(ctx context.Context, q url.Values) ([]models.Character, error) {
	q.Set("api_key", p.APIKey)
	q.Set("format", "json")
	q.Set("field_list", fieldList)

	body, err := p.get(ctx, p.BaseURL+"/characters?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("characters: decode: %w", err)
	}
	if env.StatusCode != 1 {
		return nil, fmt.Errorf("characters: provider status %d", env.StatusCode)
	}

	out := make([]models.Character, 0, len(env.Results))
	for _, c := range env.Results {
		out = append(out, mapCharacter(c))
	}
	return out, nil
}

// Get fetches one character. The provider addresses characters with a
// 4005- resource prefix.
func (p *Provider) Get(ctx context.Context, id string) (*models.Character, error) {
	q := url.Values{}
	q.Set("api_key", p.APIKey)
	q.Set("format", "json")
	q.Set("field_list", fieldList)

	body, err := p.get(ctx, p.BaseURL+"/character/4005-"+url.PathEscape(id)+"/?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var env singleEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("characters: decode: %w", err)
	}
	if env.StatusCode != 1 || env.Results.ID == 0 {
		return nil, fmt.Errorf("characters: provider status %d", env.StatusCode)
	}

	c := mapCharacter(env.Results)
	return &c, nil
}

func (p *Provider) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("characters: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("characters: request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("characters: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("characters: status %d", resp.StatusCode)
	}
	return body, nil
}

// mapCharacter fills the gaps the provider leaves: absent powers default to
// "50", absent text fields to the usual sentinel strings, and the integer
// gender code becomes a label.
func mapCharacter(c apiCharacter) models.Character {
	aliases := []string{"No aliases"}
	if c.Aliases != "" {
		aliases = []string{c.Aliases}
	}
	alterEgos := c.Aliases
	if alterEgos == "" {
		alterEgos = "No alter egos found."
	}

	return models.Character{
		ID:   strconv.Itoa(c.ID),
		Name: orUnknown(c.Name),
		Powerstats: models.Powerstats{
			Intelligence: orDefault(c.Powers.Intelligence, "50"),
			Strength:     orDefault(c.Powers.Strength, "50"),
			Speed:        orDefault(c.Powers.Speed, "50"),
			Durability:   orDefault(c.Powers.Durability, "50"),
			Power:        orDefault(c.Powers.Power, "50"),
			Combat:       orDefault(c.Powers.Combat, "50"),
		},
		Biography: models.Biography{
			FullName:        orDefault(c.RealName, orUnknown(c.Name)),
			AlterEgos:       alterEgos,
			Aliases:         aliases,
			PlaceOfBirth:    orUnknown(c.Origin.PlaceOfBirth),
			FirstAppearance: "Unknown",
			Publisher:       orUnknown(c.Publisher.Name),
			Alignment:       "good", // provider has no alignment field
		},
		Appearance: models.Appearance{
			Gender:    genderLabel(c.Gender),
			Race:      "Unknown",
			Height:    []string{"Unknown"},
			Weight:    []string{"Unknown"},
			EyeColor:  "Unknown",
			HairColor: "Unknown",
		},
		Work: models.Work{
			Occupation: "Unknown",
			Base:       "Unknown",
		},
		Connections: models.Connections{
			GroupAffiliation: "Unknown",
			Relatives:        "Unknown",
		},
		Image: models.Image{
			URL: orDefault(c.Image.MediumURL, placeholderImageURL),
		},
	}
}

const placeholderImageURL = "https://placehold.co/400x600/111827/ffffff?text=No+Image"

func genderLabel(code int) string {
	switch code {
	case 1:
		return "Male"
	case 2:
		return "Female"
	default:
		return "Other"
	}
}

func orUnknown(s string) string {
	return orDefault(s, "Unknown")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
