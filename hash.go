package cachedigest

import "strconv"

const (
	fnvOffsetBasis uint32 = 2166136261
	fnvPrime       uint32 = 16777619
)

// Fnv1a computes the 32-bit FNV-1a hash of s.
//
// This function is the compatibility contract of the digest format: every
// implementation that shares digests must produce bit-identical values,
// including the 32-bit multiplication wraparound after each byte.
func Fnv1a(s string) uint32 {
	hash := fnvOffsetBasis
	for i := 0; i < len(s); i++ {
		hash ^= uint32(s[i])
		hash *= fnvPrime
	}
	return hash
}

// Fingerprint derives the 12-bit fingerprint for key, always in [1, 4095].
// A raw value of 0 is substituted with 1 because 0 marks an empty slot;
// the slight bias toward 1 is part of the wire format and must be kept.
func Fingerprint(key string) uint16 {
	fp := uint16(Fnv1a(key) & (1<<FingerprintBits - 1))
	if fp == 0 {
		return 1
	}
	return fp
}

// PrimaryBucket returns the primary bucket index of key.
// numBuckets must be a nonzero power of two, as validated by Decode.
func PrimaryBucket(key string, numBuckets int) int {
	return int(Fnv1a(key) % uint32(numBuckets))
}

// AlternateBucket returns the other candidate bucket for a fingerprint.
// The offset is derived from the hash of the fingerprint's decimal string
// and forced odd, so with a power-of-two numBuckets the transform is its
// own inverse: applying it twice yields bucket again. That reversibility
// is what lets the filter find both candidate buckets without storing
// original keys.
func AlternateBucket(bucket int, fp uint16, numBuckets int) int {
	h := Fnv1a(strconv.Itoa(int(fp)))
	mask := uint32(numBuckets - 1)
	offset := int((h | 1) & mask)
	return (bucket ^ offset) & (numBuckets - 1)
}
