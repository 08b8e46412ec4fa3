package detector

import "github.com/rs/zerolog"

const (
	DefaultMaxRedirects        = 10
	DefaultMaxBodySize   int64 = 1024 * 1024 * 1024
	DefaultReadChunkSize       = 64 * 1024
)

// Bounds limit the cost of a single run. They do not change while a run is in progress.
type Bounds struct {
	// MaxRedirects is the hop ceiling; the initial fetch counts as hop 1.
	MaxRedirects int
	// MaxBodySize is the byte ceiling for a terminal response body.
	MaxBodySize int64
	// ReadChunkSize is the read granularity used while draining a body.
	ReadChunkSize int
}

// DefaultBounds returns the bounds used when none are configured.
func DefaultBounds() Bounds {
	return Bounds{
		MaxRedirects:  DefaultMaxRedirects,
		MaxBodySize:   DefaultMaxBodySize,
		ReadChunkSize: DefaultReadChunkSize,
	}
}

// withDefaults replaces non-positive fields with their defaults.
func (b Bounds) withDefaults() Bounds {
	if b.MaxRedirects <= 0 {
		b.MaxRedirects = DefaultMaxRedirects
	}
	if b.MaxBodySize <= 0 {
		b.MaxBodySize = DefaultMaxBodySize
	}
	if b.ReadChunkSize <= 0 {
		b.ReadChunkSize = DefaultReadChunkSize
	}
	return b
}

// Option configures a Detector.
type Option func(*Detector)

// WithBounds replaces all bounds at once. Non-positive fields keep their defaults.
func WithBounds(b Bounds) Option {
	return func(d *Detector) {
		d.bounds = b
	}
}

// WithMaxRedirects sets the maximum number of hops, the first request included.
func WithMaxRedirects(n int) Option {
	return func(d *Detector) {
		d.bounds.MaxRedirects = n
	}
}

// WithMaxBodySize sets the largest terminal body, in bytes, read before giving up.
func WithMaxBodySize(n int64) Option {
	return func(d *Detector) {
		d.bounds.MaxBodySize = n
	}
}

// WithReadChunkSize sets the buffer size used while reading bodies.
func WithReadChunkSize(n int) Option {
	return func(d *Detector) {
		d.bounds.ReadChunkSize = n
	}
}

// WithFetcher replaces the HTTP transport. ClientOptions are ignored when a
// Fetcher is supplied.
func WithFetcher(f Fetcher) Option {
	return func(d *Detector) {
		d.fetcher = f
	}
}

// WithClientOptions configures the HTTPFetcher built for every run.
func WithClientOptions(o ClientOptions) Option {
	return func(d *Detector) {
		d.client = o
	}
}

// WithLogger sets the logger used for per-hop debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Detector) {
		d.logger = l
	}
}
