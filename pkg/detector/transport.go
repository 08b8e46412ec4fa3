package detector

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/vit0-9/redirect_detector/pkg/utils"
)

// Response is what the walker needs to know about one fetch.
type Response struct {
	StatusCode int
	Header     http.Header
	// URL is the URL the transport actually requested.
	URL  string
	Body io.ReadCloser
}

// Fetcher issues a single GET without following redirects. The returned body
// must be left unread; the walker decides whether to consume it and always
// closes it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Response, error)
}

// ClientOptions configures the default HTTP transport. The walker passes it
// through without looking at it.
type ClientOptions struct {
	// Client is copied and used as the base client when set. Its
	// CheckRedirect policy is always replaced.
	Client *http.Client
	// Timeout bounds each individual request, not the whole run.
	Timeout time.Duration
	// UserAgent defaults to a random browser user agent.
	UserAgent string
	// Header is added to every request.
	Header http.Header
	// Cookies enables a cookie jar that lives for a single Detect run, so
	// cookies set by one hop are sent to the next.
	Cookies bool
}

// HTTPFetcher is the net/http implementation of Fetcher.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	header    http.Header
}

// NewHTTPFetcher builds a fetcher whose client never follows redirects on its own.
func NewHTTPFetcher(opts ClientOptions) (*HTTPFetcher, error) {
	var client *http.Client
	if opts.Client != nil {
		c := *opts.Client
		c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
		if opts.Timeout > 0 {
			c.Timeout = opts.Timeout
		}
		client = &c
	} else {
		client = utils.NewHTTPClient(opts.Timeout)
	}

	if opts.Cookies {
		jar, err := utils.NewCookieJar()
		if err != nil {
			return nil, err
		}
		client.Jar = jar
	}

	return &HTTPFetcher{
		client:    client,
		userAgent: opts.UserAgent,
		header:    opts.Header.Clone(),
	}, nil
}

// Fetch issues a single GET. Transport errors are returned unwrapped.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	utils.SetBrowserHeaders(req, f.userAgent)
	for k, vs := range f.header {
		req.Header[k] = vs
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		URL:        resp.Request.URL.String(),
		Body:       resp.Body,
	}, nil
}
