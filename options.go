package cachedigest

import (
	"io"
	"log/slog"
)

// Options controls how Middleware and DigestFromRequest extract and
// decode the digest cookie.
type Options struct {
	CookieName       string
	MaxEncodedLength int
	CacheSize        int
	Logger           *slog.Logger
}

type Option func(*Options)

func defaultOptions() Options {
	return Options{
		CookieName:       "cache_digest",
		MaxEncodedLength: 8192,
		CacheSize:        0,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func applyOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCookieName overrides the cookie the digest is read from.
func WithCookieName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.CookieName = name
		}
	}
}

// WithMaxEncodedLength caps the accepted cookie value length. Longer
// values are rejected as invalid digests without being decoded.
func WithMaxEncodedLength(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxEncodedLength = n
		}
	}
}

// WithCacheSize enables memoization of decoded digests, keyed by the raw
// cookie value. Zero (the default) disables it.
func WithCacheSize(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.CacheSize = n
		}
	}
}

// WithLogger sets the logger used to report rejected digests at Debug
// level. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
