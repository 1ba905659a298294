package hashfunc_test

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"dictcrackr/hashfunc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		desc     string
		selector string
		kind     hashfunc.Kind
		err      error
	}{
		{desc: "resolve md5", selector: "md5", kind: hashfunc.MD5},
		{desc: "resolve sha256", selector: "sha256", kind: hashfunc.SHA256},
		{desc: "resolve ignores case", selector: "SHA1", kind: hashfunc.SHA1},
		{desc: "resolve trims whitespace", selector: " sha3-256 \n", kind: hashfunc.SHA3_256},
		{desc: "resolve blake2b", selector: "blake2b-256", kind: hashfunc.BLAKE2b256},
		{desc: "reject rot13", selector: "rot13", err: hashfunc.ErrUnsupportedHashFunction},
		{desc: "reject empty selector", selector: "", err: hashfunc.ErrUnsupportedHashFunction},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			kind, err := hashfunc.Resolve(tc.selector)
			if tc.err != nil {
				assert.True(t, errors.Is(err, tc.err), "expected %v, got %v", tc.err, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.kind, kind)
		})
	}
}

func TestUnsupportedErrorNamesSelector(t *testing.T) {
	_, err := hashfunc.Resolve("rot13")

	var unsupported *hashfunc.UnsupportedError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "rot13", unsupported.Name)
	assert.Contains(t, err.Error(), `"rot13"`)
}

func TestSumMatchesStdlib(t *testing.T) {
	md5Sum := md5.Sum([]byte("password"))
	sha1Sum := sha1.Sum([]byte("password"))
	sha256Sum := sha256.Sum256([]byte("password"))

	cases := []struct {
		desc   string
		kind   hashfunc.Kind
		digest string
	}{
		{desc: "md5", kind: hashfunc.MD5, digest: hex.EncodeToString(md5Sum[:])},
		{desc: "sha1", kind: hashfunc.SHA1, digest: hex.EncodeToString(sha1Sum[:])},
		{desc: "sha256", kind: hashfunc.SHA256, digest: hex.EncodeToString(sha256Sum[:])},
		{desc: "md5 known vector", kind: hashfunc.MD5, digest: "5f4dcc3b5aa765d61d8327deb882cf99"},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.digest, tc.kind.Sum("password"))
		})
	}
}

func TestEveryKindHasFixedLowercaseHexLength(t *testing.T) {
	for _, name := range hashfunc.Names() {
		kind, err := hashfunc.Resolve(name)
		require.NoError(t, err)

		for _, input := range []string{"", "a", "correct horse battery staple"} {
			digest := kind.Sum(input)
			assert.Len(t, digest, kind.HexLen(), "%s digest length", name)
			assert.Regexp(t, "^[0-9a-f]+$", digest)
		}
	}
}

func TestHexLen(t *testing.T) {
	assert.Equal(t, 32, hashfunc.MD5.HexLen())
	assert.Equal(t, 40, hashfunc.SHA1.HexLen())
	assert.Equal(t, 64, hashfunc.SHA256.HexLen())
	assert.Equal(t, 128, hashfunc.SHA512.HexLen())
	assert.Equal(t, 40, hashfunc.RIPEMD160.HexLen())
}

func TestNamesRoundTrip(t *testing.T) {
	names := hashfunc.Names()
	assert.IsIncreasing(t, names)

	for _, name := range names {
		kind, err := hashfunc.Resolve(name)
		require.NoError(t, err)
		assert.True(t, kind.Valid())
		assert.Equal(t, name, kind.String())
	}
}

func TestInvalidKind(t *testing.T) {
	var k hashfunc.Kind
	assert.False(t, k.Valid())
	assert.Equal(t, "Kind(0)", k.String())
	assert.Panics(t, func() { k.Sum("x") })
}
