package comics

import (
	"hash/fnv"
	"io"
	"net/url"
	"strings"
)

// StableID derives a comic identifier from title plus normalized cover URL.
// The same logical comic maps to the same id on every fetch; favorites and
// reading history depend on that.
func StableID(title, coverURL string) int {
	h := fnv.New32a()
	_, _ = io.WriteString(h, strings.TrimSpace(title))
	_, _ = io.WriteString(h, "|")
	_, _ = io.WriteString(h, normalizeCoverURL(coverURL))
	return int(h.Sum32() & 0x7fffffff)
}

// normalizeCoverURL lowercases scheme and host and strips query/fragment,
// so CDN cache-busting parameters don't change comic identity.
func normalizeCoverURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return strings.ToLower(raw)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
