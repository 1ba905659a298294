package hasher_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"dictcrackr/hasher"
	"dictcrackr/hashfunc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func wordlist(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("word-%d", i)
	}
	return words
}

func TestHashAll(t *testing.T) {
	cases := []struct {
		desc       string
		candidates []string
	}{
		{desc: "empty dictionary", candidates: []string{}},
		{desc: "nil dictionary", candidates: nil},
		{desc: "single candidate", candidates: []string{"password"}},
		{desc: "duplicates are kept", candidates: []string{"a", "b", "a"}},
		{desc: "unicode and empty string", candidates: []string{"zażółć", "", "パスワード"}},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			records := hasher.HashAll(tc.candidates, hashfunc.SHA256)

			require.NotNil(t, records)
			require.Len(t, records, len(tc.candidates))
			for i, rec := range records {
				assert.Equal(t, i, rec.Seq)
				assert.Equal(t, tc.candidates[i], rec.Candidate)
				assert.Equal(t, sha256Hex(tc.candidates[i]), rec.Digest)
			}
		})
	}
}

func TestHashAllDeterministic(t *testing.T) {
	for _, name := range hashfunc.Names() {
		kind, err := hashfunc.Resolve(name)
		require.NoError(t, err)

		first := hasher.HashAll([]string{"letmein"}, kind)
		second := hasher.HashAll([]string{"letmein"}, kind)
		assert.Equal(t, first, second, "%s is not deterministic", name)
	}
}

func flatten(shards [][]hasher.DigestRecord) []hasher.DigestRecord {
	records := []hasher.DigestRecord{}
	for _, shard := range shards {
		records = append(records, shard...)
	}
	return records
}

func TestHashAllParallelMatchesSequential(t *testing.T) {
	cases := []struct {
		desc    string
		n       int
		workers int
	}{
		{desc: "empty input", n: 0, workers: 4},
		{desc: "single worker", n: 10, workers: 1},
		{desc: "zero workers falls back to one", n: 10, workers: 0},
		{desc: "even split", n: 100, workers: 4},
		{desc: "uneven split", n: 101, workers: 7},
		{desc: "more workers than candidates", n: 3, workers: 16},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			words := wordlist(tc.n)

			shards, err := hasher.HashAllParallel(context.Background(), words, hashfunc.MD5, tc.workers)
			require.NoError(t, err)

			assert.Equal(t, hasher.HashAll(words, hashfunc.MD5), flatten(shards))
			if tc.workers > 0 && tc.n > 0 {
				assert.LessOrEqual(t, len(shards), tc.workers)
			}
		})
	}
}

func TestHashAllParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	shards, err := hasher.HashAllParallel(ctx, wordlist(1000), hashfunc.SHA1, 4)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, shards)
}
