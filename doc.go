// Package cachedigest decodes and queries compact cache digest cookies.
//
// A cache digest is a versioned binary snapshot of the assets a client
// already holds in its local cache, encoded as a read-only cuckoo filter
// and sent with each request as a base64 cookie. The server decodes it
// once and asks "is this asset probably cached?" per asset: lookups never
// produce false negatives, and false positives are bounded by the 12-bit
// fingerprint size. Digests are built and serialized by the client-side
// encoder; this package only deserializes and queries them.
//
// # Architecture
//
//   - Decode – parses the cookie value into an immutable Digest. It never
//     returns an error: malformed input yields an invalid Digest whose
//     lookups all report false.
//   - Digest.Lookup – membership query combining the FNV-1a hash, the
//     12-bit fingerprint and the two candidate buckets of partial-key
//     cuckoo hashing.
//   - Fnv1a, Fingerprint, PrimaryBucket, AlternateBucket – the pure hash
//     primitives, exported because encoders and other implementations
//     must reproduce them bit for bit.
//   - Middleware / DigestFromRequest – net/http integration that reads
//     the cookie, decodes it (optionally memoized via an LRU keyed by the
//     raw cookie value) and injects the Digest into the request context.
//   - Context helpers – SetDigestToContext / GetDigestFromContext for
//     manual wiring when the middleware is not used.
//
// # Wire Format
//
// After base64 decoding (URL-safe or standard alphabet, padding
// optional), all integers big-endian:
//
//	byte 0     version, must be 1
//	bytes 1-2  bucket count, must be a nonzero power of two
//	bytes 3-4  reserved
//	bytes 5..  bucket count × 4 fingerprints, uint16 each, bucket-major
//
// A truncated fingerprint table is not an error; missing entries are
// empty slots. The hash pipeline is the cross-implementation contract:
// FNV-1a with 32-bit wraparound, fingerprint = low 12 bits (0 becomes 1),
// primary bucket = hash mod bucket count, alternate bucket = primary XOR
// an odd masked hash of the fingerprint's decimal string.
//
// # Usage
//
//	import "github.com/dmitrymomot/cachedigest"
//
//	r := chi.NewRouter()
//	r.Use(cachedigest.Middleware(
//	    cachedigest.WithCookieName("cache_digest"),
//	    cachedigest.WithCacheSize(1024),
//	))
//
//	r.Get("/page", func(w http.ResponseWriter, r *http.Request) {
//	    d := cachedigest.GetDigestFromContext(r.Context())
//	    if d.Lookup("src/css/main.css:DfFbFQk_") {
//	        // client most likely has the asset; skip inlining it
//	    }
//	})
//
// Or without HTTP plumbing:
//
//	d := cachedigest.Decode(cookieValue)
//	if !d.IsValid() {
//	    log.Printf("digest rejected: %v", d.Err())
//	}
//	cached := d.Lookup("src/js/app.js:DW873Fox")
//
// # Error Handling
//
// Decode collapses every failure (empty input, illegal base64, short
// buffer, wrong version, bad bucket count) into the invalid state; the
// reason is available via Err as one of the package sentinel errors.
// Lookups against an invalid or nil Digest return false, which at worst
// costs an unnecessary cache miss, never a wrong cache hit.
//
// # Concurrency
//
// A Digest is immutable after Decode, so unlimited concurrent readers
// may share one instance without coordination. Decoding is pure CPU with
// no I/O.
package cachedigest
