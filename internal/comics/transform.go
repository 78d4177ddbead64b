package comics

import (
	"fmt"
	"regexp"
	"strings"

	"vanquish/pkg/models"
)

const placeholderCoverURL = "https://placehold.co/400x600/111827/ffffff?text=Comic+Cover"

var (
	issueRe     = regexp.MustCompile(`#(\d+)`)
	titleYearRe = regexp.MustCompile(`\((\d{4})\)\s*$`)
)

// transformAll maps provider records to comics and drops id collisions,
// keeping the first occurrence.
func transformAll(raws []rawComic) []models.Comic {
	seen := make(map[int]struct{}, len(raws))
	out := make([]models.Comic, 0, len(raws))
	for _, r := range raws {
		c := transformComic(r)
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out
}

func transformComic(r rawComic) models.Comic {
	title := strings.TrimSpace(titleYearRe.ReplaceAllString(r.Title, ""))
	if title == "" {
		title = "Unknown Title"
	}

	cover := r.CoverPage
	if cover == "" {
		cover = placeholderCoverURL
	}

	desc := r.Description
	if desc == "" {
		desc = "No description available"
	}

	return models.Comic{
		// Identity comes from the raw title so re-fetching the same
		// record always hashes the same input.
		ID:             StableID(r.Title, r.CoverPage),
		Title:          title,
		IssueNumber:    extractIssueNumber(r.Title),
		Description:    desc,
		CoverImageURL:  cover,
		ReleaseDate:    extractYear(r.Title, r.Information),
		Creators:       models.Creators{Writer: []string{}, Artist: []string{}},
		Characters:     []models.CharacterRef{},
		DownloadLinks:  r.DownloadLinks,
		AdditionalInfo: stringifyInfo(r.Information),
		Source:         models.ComicSourceLive,
	}
}

func extractIssueNumber(title string) string {
	m := issueRe.FindStringSubmatch(title)
	if m == nil {
		return ""
	}
	return m[1]
}

// extractYear prefers the provider's Year field, then a trailing (YYYY) in
// the title. Dates default to January 1st of that year.
func extractYear(title string, info map[string]any) string {
	if y, ok := info["Year"]; ok {
		if s := strings.TrimSpace(fmt.Sprint(y)); s != "" {
			return s + "-01-01"
		}
	}
	if m := titleYearRe.FindStringSubmatch(title); m != nil {
		return m[1] + "-01-01"
	}
	return ""
}

func stringifyInfo(info map[string]any) map[string]string {
	if len(info) == 0 {
		return nil
	}
	out := make(map[string]string, len(info))
	for k, v := range info {
		out[k] = fmt.Sprint(v)
	}
	return out
}

// Placeholder builds the stand-in record returned when an id is found
// nowhere. Comics are never truly not-found: the reader page still works
// through the READONLINE link.
func Placeholder(id int) models.Comic {
	return models.Comic{
		ID:            id,
		Title:         fmt.Sprintf("Comic #%d", id),
		Description:   "We could not find detailed information for this comic. Try browsing comics by publisher.",
		CoverImageURL: placeholderCoverURL,
		IssueNumber:   "1",
		Creators:      models.Creators{Writer: []string{}, Artist: []string{}},
		Characters:    []models.CharacterRef{},
		DownloadLinks: map[string]string{models.ReadOnlineKey: "https://getcomics.info/"},
		Source:        models.ComicSourcePlaceholder,
	}
}
