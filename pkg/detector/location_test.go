package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLocation(t *testing.T) {
	tests := []struct {
		name       string
		location   string
		requestURL string
		want       string
	}{
		{"root relative drops path", "/c", "http://host/a/b", "http://host/c"},
		{"root relative drops query", "/c?d=1", "http://host/a?q=2", "http://host/c?d=1"},
		{"keeps port", "/next", "https://host:8443/prev", "https://host:8443/next"},
		{"absolute unchanged", "https://other.example/x", "http://host/a", "https://other.example/x"},
		{"path relative unchanged", "foo/bar", "http://host/a/b", "foo/bar"},
		{"scheme relative treated as root path", "//cdn.example/x", "https://host/a", "https://host//cdn.example/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveLocation(tt.location, tt.requestURL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveLocationEmpty(t *testing.T) {
	_, err := resolveLocation("", "http://host/a")
	require.ErrorIs(t, err, ErrNoLocation)
}

func TestResolveLocationBadRequestURL(t *testing.T) {
	_, err := resolveLocation("/c", "http://[::1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoLocation)
}
