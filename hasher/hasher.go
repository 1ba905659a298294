// Package hasher computes the digest of every dictionary candidate
package hasher

import (
	"context"

	"dictcrackr/hashfunc"

	"golang.org/x/sync/errgroup"
)

// DigestRecord pairs a candidate with its digest. Seq is the candidate's position
// in the wordlist and decides collisions when indexes are merged.
type DigestRecord struct {
	Seq       int
	Candidate string
	Digest    string
}

// HashAll hashes every candidate once, in input order
func HashAll(candidates []string, kind hashfunc.Kind) []DigestRecord {
	// a background context is never cancelled
	records, _ := hashRange(context.Background(), candidates, 0, kind)
	return records
}

// hashRange hashes candidates whose first element sits at offset in the wordlist
func hashRange(ctx context.Context, candidates []string, offset int, kind hashfunc.Kind) ([]DigestRecord, error) {
	records := make([]DigestRecord, len(candidates))

	for i, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records[i] = DigestRecord{
			Seq:       offset + i,
			Candidate: candidate,
			Digest:    kind.Sum(candidate),
		}
	}

	return records, nil
}

// HashAllParallel splits the candidates into at most workers contiguous shards and hashes
// each shard in its own goroutine. Shards come back in scan order and every record keeps
// its global sequence number, so concatenating the shards gives the same result as HashAll.
func HashAllParallel(ctx context.Context, candidates []string, kind hashfunc.Kind, workers int) ([][]DigestRecord, error) {
	bounds := partition(len(candidates), workers)
	shards := make([][]DigestRecord, len(bounds))

	g, ctx := errgroup.WithContext(ctx)

	for i, b := range bounds {
		i, b := i, b
		g.Go(func() error {
			shard, err := hashRange(ctx, candidates[b.start:b.end], b.start, kind)
			if err != nil {
				return err
			}

			// each worker owns exactly one slot
			shards[i] = shard
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return shards, nil
}

type bound struct {
	start, end int
}

// partition splits [0, n) into at most parts contiguous ranges of near-equal size
func partition(n, parts int) []bound {
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}
	if n == 0 {
		return []bound{{0, 0}}
	}

	bounds := make([]bound, 0, parts)
	size, rem := n/parts, n%parts
	start := 0

	for i := 0; i < parts; i++ {
		end := start + size
		if i < rem {
			end++
		}
		bounds = append(bounds, bound{start, end})
		start = end
	}

	return bounds
}
