package detector

import (
	"fmt"
	"net/url"
	"strings"
)

// resolveLocation computes the next hop from a Location header value and the
// URL of the response that carried it.
//
// Only root-relative values are rewritten: the scheme and authority of
// requestURL are prepended and its path and query dropped. Every other value,
// including path-relative ones, is returned as is.
func resolveLocation(location, requestURL string) (string, error) {
	if location == "" {
		return "", ErrNoLocation
	}
	if !strings.HasPrefix(location, "/") {
		return location, nil
	}

	u, err := url.Parse(requestURL)
	if err != nil {
		return "", fmt.Errorf("parse request url %q: %w", requestURL, err)
	}
	return u.Scheme + "://" + u.Host + location, nil
}
