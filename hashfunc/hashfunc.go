// Package hashfunc maps hash function selectors to the digest routines used for cracking
package hashfunc

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Kind identifies one supported digest algorithm
type Kind int

const (
	MD4 Kind = iota + 1
	MD5
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
	SHA3_256
	SHA3_512
	BLAKE2b256
	RIPEMD160
)

var (
	// ErrUnsupportedHashFunction when a selector doesn't name a known hash function
	ErrUnsupportedHashFunction = errors.New("unsupported hash function")
)

// UnsupportedError carries the selector that could not be resolved
type UnsupportedError struct {
	Name string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported hash function: %q (supported: %s)", e.Name, strings.Join(Names(), ", "))
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupportedHashFunction
}

type algorithm struct {
	name string
	new  func() hash.Hash
}

// The only place that knows how a Kind turns into a digest routine.
var algorithms = map[Kind]algorithm{
	MD4:        {"md4", md4.New},
	MD5:        {"md5", md5.New},
	SHA1:       {"sha1", sha1.New},
	SHA224:     {"sha224", sha256.New224},
	SHA256:     {"sha256", sha256.New},
	SHA384:     {"sha384", sha512.New384},
	SHA512:     {"sha512", sha512.New},
	SHA3_256:   {"sha3-256", sha3.New256},
	SHA3_512:   {"sha3-512", sha3.New512},
	BLAKE2b256: {"blake2b-256", newBlake2b256},
	RIPEMD160:  {"ripemd160", ripemd160.New},
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, len(algorithms))
	for kind, algo := range algorithms {
		m[algo.name] = kind
	}
	return m
}()

func newBlake2b256() hash.Hash {
	// Only fails for keys longer than 64 bytes
	h, _ := blake2b.New256(nil)
	return h
}

// Resolve returns the Kind for a selector. Matching ignores case and surrounding whitespace.
func Resolve(name string) (Kind, error) {
	if kind, ok := byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return kind, nil
	}

	return 0, &UnsupportedError{Name: name}
}

// Names lists the supported selectors in sorted order
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (k Kind) String() string {
	if algo, ok := algorithms[k]; ok {
		return algo.name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the enumerated kinds
func (k Kind) Valid() bool {
	_, ok := algorithms[k]
	return ok
}

// Size is the digest length in bytes
func (k Kind) Size() int {
	return k.New().Size()
}

// HexLen is the length of the hex encoded digest
func (k Kind) HexLen() int {
	return hex.EncodedLen(k.Size())
}

// New returns a fresh hash.Hash for k. It panics on a Kind that didn't come from Resolve
// or the const block.
func (k Kind) New() hash.Hash {
	if !k.Valid() {
		panic(fmt.Sprintf("hashfunc: unknown kind %d", int(k)))
	}

	return algorithms[k].new()
}

// Sum hashes s and returns the digest as lowercase hex
func (k Kind) Sum(s string) string {
	h := k.New()
	_, _ = h.Write([]byte(s))

	return hex.EncodeToString(h.Sum(nil))
}
