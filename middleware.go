package cachedigest

import (
	"log/slog"
	"net/http"
)

// Middleware decodes the cache digest cookie once per request and stores
// the result in the request context, where handlers retrieve it with
// GetDigestFromContext. Requests without the cookie pass through
// untouched. Invalid cookies still produce a (invalid) digest in the
// context so that downstream lookups fail safe to false, and are
// reported at Debug level on the configured logger.
//
// Works with plain net/http as well as chi's Use.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	o := applyOptions(opts)

	var cache *digestCache
	if o.CacheSize > 0 {
		cache = newDigestCache(o.CacheSize)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if d, ok := digestFromRequest(r, o, cache); ok {
				if !d.IsValid() {
					o.Logger.DebugContext(r.Context(), "cache digest rejected",
						slog.String("cookie", o.CookieName),
						slog.Any("error", d.Err()))
				}
				r = r.WithContext(SetDigestToContext(r.Context(), d))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// DigestFromRequest decodes the digest cookie of a single request,
// without middleware or memoization. It returns nil when the request
// carries no digest cookie; the nil digest behaves as invalid.
func DigestFromRequest(r *http.Request, opts ...Option) *Digest {
	d, _ := digestFromRequest(r, applyOptions(opts), nil)
	return d
}

func digestFromRequest(r *http.Request, o Options, cache *digestCache) (*Digest, bool) {
	c, err := r.Cookie(o.CookieName)
	if err != nil || c.Value == "" {
		return nil, false
	}
	if len(c.Value) > o.MaxEncodedLength {
		return &Digest{err: ErrOversizedDigest}, true
	}

	if cache != nil {
		if d, ok := cache.get(c.Value); ok {
			return d, true
		}
	}
	d := Decode(c.Value)
	if cache != nil {
		cache.put(c.Value, d)
	}
	return d, true
}
