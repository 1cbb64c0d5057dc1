package cachedigest

import (
	"encoding/base64"
	"strings"
)

// Wire format constants shared by every implementation of the digest.
const (
	FormatVersion   = 1
	FingerprintBits = 12
	BucketSize      = 4
)

// Header layout: version (1 byte), bucket count (2 bytes big-endian),
// reserved (2 bytes).
const headerLen = 5

// Digest is the parsed, immutable result of decoding one cache digest
// cookie. A Digest is never mutated after Decode returns, so any number
// of goroutines may call Lookup on the same instance concurrently.
//
// All methods are safe to call on a nil receiver; a nil Digest behaves
// like an invalid one.
type Digest struct {
	err        error
	numBuckets int
	buckets    []uint16
}

// Decode parses a base64-encoded cache digest. It never returns an error:
// every parse failure, from an empty string to an unsupported version,
// collapses into an invalid Digest whose lookups all report false. Use
// IsValid or Err to distinguish the two states.
func Decode(encoded string) *Digest {
	d := &Digest{}
	d.err = d.parse(encoded)
	return d
}

// IsValid reports whether the digest decoded successfully.
func (d *Digest) IsValid() bool {
	return d != nil && d.err == nil
}

// Err returns the reason decoding failed, or nil for a valid digest.
// A nil receiver reports ErrEmptyDigest.
func (d *Digest) Err() error {
	if d == nil {
		return ErrEmptyDigest
	}
	return d.err
}

// BucketCount returns the number of buckets in the filter, or 0 for an
// invalid digest.
func (d *Digest) BucketCount() int {
	if !d.IsValid() {
		return 0
	}
	return d.numBuckets
}

// Lookup reports whether key is probably present in the digest. False
// positives are possible (distinct keys can share a fingerprint and
// bucket pair); false negatives are not, provided the digest decoded
// successfully. An invalid or nil digest reports false for every key.
func (d *Digest) Lookup(key string) bool {
	if !d.IsValid() {
		return false
	}
	fp := Fingerprint(key)
	i1 := PrimaryBucket(key, d.numBuckets)
	i2 := AlternateBucket(i1, fp, d.numBuckets)
	return d.bucketContains(i1, fp) || d.bucketContains(i2, fp)
}

func (d *Digest) bucketContains(bucket int, fp uint16) bool {
	offset := bucket * BucketSize
	for _, slot := range d.buckets[offset : offset+BucketSize] {
		if slot == fp {
			return true
		}
	}
	return false
}

func (d *Digest) parse(encoded string) error {
	if encoded == "" {
		return ErrEmptyDigest
	}

	// Accept both the URL-safe and standard base64 alphabets, padded or
	// not, by normalizing to padded standard form before a strict decode.
	normalized := strings.NewReplacer("-", "+", "_", "/").Replace(encoded)
	if rem := len(normalized) % 4; rem != 0 {
		normalized += strings.Repeat("=", 4-rem)
	}

	data, err := base64.StdEncoding.DecodeString(normalized)
	if err != nil {
		return ErrMalformedEncoding
	}
	if len(data) < headerLen {
		return ErrTruncatedHeader
	}
	if data[0] != FormatVersion {
		return ErrUnsupportedVersion
	}

	numBuckets := int(data[1])<<8 | int(data[2])
	// The XOR/mask bucket arithmetic is only self-consistent for a
	// power-of-two bucket count; anything else would index out of range.
	if numBuckets == 0 || numBuckets&(numBuckets-1) != 0 {
		return ErrBucketCount
	}
	// data[3:5] is reserved and not interpreted.

	buckets := make([]uint16, numBuckets*BucketSize)
	for i := range buckets {
		offset := headerLen + i*2
		if offset+1 >= len(data) {
			// Truncated trailer: the remaining entries stay zero,
			// i.e. empty slots. Valid per the format.
			break
		}
		buckets[i] = uint16(data[offset])<<8 | uint16(data[offset+1])
	}

	d.numBuckets = numBuckets
	d.buckets = buckets
	return nil
}
