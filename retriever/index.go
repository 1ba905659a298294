package retriever

import "dictcrackr/hasher"

type entry struct {
	seq       int
	candidate string
}

// Index maps a digest back to the candidate that produced it.
// When two candidates share a digest the one scanned last wins.
type Index struct {
	entries map[string]entry
}

func NewIndex(capacity int) *Index {
	return &Index{entries: make(map[string]entry, capacity)}
}

// BuildIndex scans records once, in slice order. A later record overwrites an earlier
// one with the same digest whatever their Seq.
func BuildIndex(records []hasher.DigestRecord) *Index {
	index := NewIndex(len(records))
	for _, rec := range records {
		index.entries[rec.Digest] = entry{seq: rec.Seq, candidate: rec.Candidate}
	}

	return index
}

// Merge folds other into idx. Higher sequence numbers win, so the result does not
// depend on the order shards are merged in.
func (idx *Index) Merge(other *Index) {
	for digest, e := range other.entries {
		if cur, ok := idx.entries[digest]; ok && cur.seq > e.seq {
			continue
		}
		idx.entries[digest] = e
	}
}

// Get looks up a normalized digest
func (idx *Index) Get(digest string) (string, bool) {
	e, ok := idx.entries[digest]
	return e.candidate, ok
}

// Len is the number of distinct digests
func (idx *Index) Len() int {
	return len(idx.entries)
}
