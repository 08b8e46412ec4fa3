// Package detector resolves the final URL of an HTTP redirect chain while
// bounding the number of hops and the number of body bytes read per response.
//
// Redirect responses are never read past their headers. Terminal responses
// are drained up to the configured size limit and discarded.
package detector

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
)

// Hop describes one fetch of a run.
type Hop struct {
	URL        string `json:"url"`
	StatusCode int    `json:"status_code"`
	// Location is the raw redirect header value, empty for terminal hops.
	Location string `json:"location,omitempty"`
}

// Result is returned only for runs that reached a terminal response.
type Result struct {
	// URL is the effective URL of the terminal response.
	URL string
	// Hops lists every fetch in order; the last one is terminal.
	Hops []Hop
	// BodyBytes is the number of terminal body bytes drained.
	BodyBytes int64
}

// Redirects returns the redirect targets followed during the run, in order.
func (r *Result) Redirects() []string {
	if len(r.Hops) < 2 {
		return nil
	}
	out := make([]string, 0, len(r.Hops)-1)
	for _, h := range r.Hops[1:] {
		out = append(out, h.URL)
	}
	return out
}

// Detector walks redirect chains. It holds no per-run state and is safe for
// concurrent use.
type Detector struct {
	bounds  Bounds
	client  ClientOptions
	fetcher Fetcher
	logger  zerolog.Logger
}

// New returns a Detector with default bounds and a silent logger, adjusted by opts.
func New(opts ...Option) *Detector {
	d := &Detector{
		bounds: DefaultBounds(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.bounds = d.bounds.withDefaults()
	return d
}

// Bounds returns the effective bounds, defaults applied.
func (d *Detector) Bounds() Bounds {
	return d.bounds
}

// Detect is a shorthand for New(opts...).Detect that only returns the final URL.
func Detect(ctx context.Context, url string, opts ...Option) (string, error) {
	res, err := New(opts...).Detect(ctx, url)
	if err != nil {
		return "", err
	}
	return res.URL, nil
}

// Detect follows the redirect chain starting at seed.
//
// Bound violations are reported as *Error wrapping one of the Err* kinds.
// Transport failures, including context cancellation, are returned exactly
// as the Fetcher produced them.
func (d *Detector) Detect(ctx context.Context, seed string) (*Result, error) {
	logger := d.logger.With().Str("seed", seed).Logger()
	logger.Debug().Msg("Start processing")

	fetcher, err := d.fetcherForRun()
	if err != nil {
		return nil, err
	}

	t := newTracker(seed, d.bounds.MaxRedirects)
	var hops []Hop
	target := seed

	for {
		hop, read, err := d.fetch(ctx, fetcher, target, logger)
		if err != nil {
			return nil, fail(err, target, t.hops)
		}
		hops = append(hops, hop)

		if !isRedirect(hop.StatusCode) {
			logger.Debug().Str("url", hop.URL).Int("hops", t.hops).Msg("Finished")
			return &Result{URL: hop.URL, Hops: hops, BodyBytes: read}, nil
		}

		next, err := resolveLocation(hop.Location, hop.URL)
		if err != nil {
			return nil, fail(err, hop.URL, t.hops)
		}
		logger.Debug().Str("url", next).Int("status", hop.StatusCode).Msg("Redirect found")

		if err := t.admit(next); err != nil {
			return nil, fail(err, next, t.hops)
		}
		target = next
	}
}

// fetch performs one hop. The body is closed before returning on every path;
// it is only read for terminal responses.
func (d *Detector) fetch(ctx context.Context, fetcher Fetcher, target string, logger zerolog.Logger) (Hop, int64, error) {
	logger.Debug().Str("url", target).Msg("GET")
	resp, err := fetcher.Fetch(ctx, target)
	if err != nil {
		return Hop{}, 0, err
	}
	if resp.Body == nil {
		resp.Body = http.NoBody
	}
	defer resp.Body.Close() //nolint:errcheck

	hop := Hop{URL: resp.URL, StatusCode: resp.StatusCode}
	if hop.URL == "" {
		hop.URL = target
	}

	if isRedirect(resp.StatusCode) {
		hop.Location = resp.Header.Get("Location")
		return hop, 0, nil
	}

	read, err := drainBody(resp.Body, d.bounds.MaxBodySize, d.bounds.ReadChunkSize, logger)
	return hop, read, err
}

func (d *Detector) fetcherForRun() (Fetcher, error) {
	if d.fetcher != nil {
		return d.fetcher, nil
	}
	return NewHTTPFetcher(d.client)
}

func isRedirect(status int) bool {
	return status >= 300 && status < 400
}

func fail(err error, url string, hop int) error {
	var kind Kind
	if errors.As(err, &kind) {
		return &Error{Kind: kind, URL: url, Hop: hop}
	}
	return err
}
