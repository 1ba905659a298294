// Package retriever matches stored credential digests against a hashed dictionary
package retriever

import (
	"errors"
	"fmt"
	"strings"

	"dictcrackr/hasher"
)

var (
	// ErrCredentialCountMismatch when a credential source has a different number of logins and digests
	ErrCredentialCountMismatch = errors.New("number of logins and password hashes do not match")
)

// CountMismatchError reports both column lengths of an invalid credential set
type CountMismatchError struct {
	Logins  int
	Digests int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("%v: %d logins, %d password hashes; every login needs exactly one hash",
		ErrCredentialCountMismatch, e.Logins, e.Digests)
}

func (e *CountMismatchError) Is(target error) bool {
	return target == ErrCredentialCountMismatch
}

// Credential is one account and its stored password digest
type Credential struct {
	Login  string
	Digest string
}

// CredentialSet is a credential source in column form
type CredentialSet struct {
	Logins  []string
	Digests []string
}

// Validate checks that every login has a digest
func (cs CredentialSet) Validate() error {
	if len(cs.Logins) != len(cs.Digests) {
		return &CountMismatchError{Logins: len(cs.Logins), Digests: len(cs.Digests)}
	}

	return nil
}

// Len is the number of credentials. Only meaningful once Validate passed.
func (cs CredentialSet) Len() int {
	return len(cs.Logins)
}

// Credentials pairs logins with digests by position. It panics if the set is invalid.
func (cs CredentialSet) Credentials() []Credential {
	if err := cs.Validate(); err != nil {
		panic(err)
	}

	creds := make([]Credential, len(cs.Logins))
	for i := range cs.Logins {
		creds[i] = Credential{Login: cs.Logins[i], Digest: cs.Digests[i]}
	}

	return creds
}

// NormalizeDigest puts a stored digest into the format produced by the hasher
func NormalizeDigest(digest string) string {
	return strings.ToLower(strings.TrimSpace(digest))
}

// Match is the outcome for one credential
type Match struct {
	Login     string
	Digest    string
	Candidate string
	Found     bool
}

// MatchResult holds one Match per credential, in credential order
type MatchResult struct {
	Matches []Match
}

// Len is the number of credentials that were looked up
func (mr *MatchResult) Len() int {
	return len(mr.Matches)
}

// Found counts the recovered passwords
func (mr *MatchResult) Found() int {
	n := 0
	for _, m := range mr.Matches {
		if m.Found {
			n++
		}
	}

	return n
}

// Lookup returns the recovered password of the i-th credential
func (mr *MatchResult) Lookup(i int) (string, bool) {
	if i < 0 || i >= len(mr.Matches) {
		return "", false
	}

	m := mr.Matches[i]
	return m.Candidate, m.Found
}

// MatchAll resolves every credential against the hashed dictionary. Nothing is matched
// when the credential set is invalid.
func MatchAll(records []hasher.DigestRecord, creds CredentialSet) (*MatchResult, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	return lookup(BuildIndex(records), creds), nil
}

// MatchShards is MatchAll over records hashed in shards. Shard indexes are merged
// with the same tie-break as a single scan.
func MatchShards(shards [][]hasher.DigestRecord, creds CredentialSet) (*MatchResult, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	index := NewIndex(0)
	for _, shard := range shards {
		index.Merge(BuildIndex(shard))
	}

	return lookup(index, creds), nil
}

func lookup(index *Index, creds CredentialSet) *MatchResult {
	result := &MatchResult{Matches: make([]Match, 0, creds.Len())}

	for _, cred := range creds.Credentials() {
		candidate, found := index.Get(NormalizeDigest(cred.Digest))
		result.Matches = append(result.Matches, Match{
			Login:     cred.Login,
			Digest:    cred.Digest,
			Candidate: candidate,
			Found:     found,
		})
	}

	return result
}
