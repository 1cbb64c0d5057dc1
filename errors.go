package cachedigest

import "errors"

var (
	ErrEmptyDigest        = errors.New("cachedigest.empty")
	ErrMalformedEncoding  = errors.New("cachedigest.malformed_encoding")
	ErrTruncatedHeader    = errors.New("cachedigest.truncated_header")
	ErrUnsupportedVersion = errors.New("cachedigest.unsupported_version")
	ErrBucketCount        = errors.New("cachedigest.bad_bucket_count")
	ErrOversizedDigest    = errors.New("cachedigest.oversized")
)
