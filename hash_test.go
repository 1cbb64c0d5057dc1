package cachedigest_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cachedigest"
)

func TestFnv1a(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  uint32
	}{
		{"", 2166136261},
		{"a", 3826002220},
		{"test", 2949673445},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cachedigest.Fnv1a(tt.input))
		})
	}
}

func TestFingerprintRange(t *testing.T) {
	t.Parallel()

	// Zero is reserved for empty slots, so a fingerprint must always
	// land in [1, 4095], whatever the key hashes to.
	for i := 0; i < 20000; i++ {
		key := fmt.Sprintf("src/assets/chunk-%d.js:rev%d", i, i*7)
		fp := cachedigest.Fingerprint(key)
		require.GreaterOrEqual(t, fp, uint16(1), "key %q", key)
		require.LessOrEqual(t, fp, uint16(4095), "key %q", key)
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	t.Parallel()
	assert.Equal(t,
		cachedigest.Fingerprint("src/css/main.css:DfFbFQk_"),
		cachedigest.Fingerprint("src/css/main.css:DfFbFQk_"))
}

func TestPrimaryBucketRange(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 64, 1024, 32768} {
		for i := 0; i < 100; i++ {
			key := fmt.Sprintf("item-%d", i)
			b := cachedigest.PrimaryBucket(key, n)
			require.GreaterOrEqual(t, b, 0)
			require.Less(t, b, n)
		}
	}
}

func TestAlternateBucketInvolution(t *testing.T) {
	t.Parallel()

	// Applying the alternate-bucket transform twice must return the
	// original bucket for every power-of-two table size. This is what
	// lets a lookup find both candidate buckets from either side.
	for _, n := range []int{1, 2, 4, 8, 16, 256, 4096, 32768} {
		for fp := uint16(1); fp <= 4095; fp += 37 {
			for _, bucket := range []int{0, 1 % n, n / 2, n - 1} {
				alt := cachedigest.AlternateBucket(bucket, fp, n)
				require.GreaterOrEqual(t, alt, 0)
				require.Less(t, alt, n)
				back := cachedigest.AlternateBucket(alt, fp, n)
				require.Equal(t, bucket, back,
					"n=%d fp=%d bucket=%d", n, fp, bucket)
			}
		}
	}
}

func TestAlternateBucketMatchesReference(t *testing.T) {
	t.Parallel()

	// Hand-checked against the shared format: fp=1485, Fnv1a("1485")
	// determines the offset. The exact indices are part of the
	// cross-implementation contract exercised end to end in
	// TestDecode_FixedVector; here we only pin the pure function for a
	// known pair.
	i1 := cachedigest.PrimaryBucket("src/css/critical.css:B20ictSB", 4)
	fp := cachedigest.Fingerprint("src/css/critical.css:B20ictSB")
	assert.Equal(t, 1, i1)
	assert.Equal(t, uint16(1485), fp)
	assert.Equal(t, 2, cachedigest.AlternateBucket(i1, fp, 4))
}
