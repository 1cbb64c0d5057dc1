package cachedigest

import "context"

type digestContextKey struct{}

// SetDigestToContext stores a decoded digest in the context.
func SetDigestToContext(ctx context.Context, d *Digest) context.Context {
	return context.WithValue(ctx, digestContextKey{}, d)
}

// GetDigestFromContext returns the digest stored by Middleware, or nil
// when the request carried no digest cookie. A nil digest is safe to
// query and behaves as invalid.
func GetDigestFromContext(ctx context.Context) *Digest {
	d, _ := ctx.Value(digestContextKey{}).(*Digest)
	return d
}
