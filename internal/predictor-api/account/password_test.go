package account

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLegacyDigest(t *testing.T) {
	cases := map[string]string{
		"":                   "0",
		"abc":                "17862",
		"polygenelubricants": "-80000000",
	}
	for in, want := range cases {
		assert.Equal(t, want, LegacyDigest(in), "input %q", in)
	}
}

func TestVerifyPassword(t *testing.T) {
	h, err := HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(h, "$2a$"))

	ok, legacy := VerifyPassword(h, "s3cret")
	assert.True(t, ok)
	assert.False(t, legacy)

	ok, _ = VerifyPassword(h, "s3creT")
	assert.False(t, ok)

	ok, legacy = VerifyPassword(LegacyDigest("s3cret"), "s3cret")
	assert.True(t, ok)
	assert.True(t, legacy)

	ok, _ = VerifyPassword("", "")
	assert.False(t, ok)
}

func TestHashPassword_LongPasswords(t *testing.T) {
	long := strings.Repeat("a", 73)

	h, err := HashPassword(long, bcrypt.MinCost)
	require.NoError(t, err)

	ok, legacy := VerifyPassword(h, long)
	assert.True(t, ok)
	assert.False(t, legacy)

	// os 72 primeiros bytes iguais não bastam
	ok, _ = VerifyPassword(h, strings.Repeat("a", 72))
	assert.False(t, ok)
	ok, _ = VerifyPassword(h, strings.Repeat("a", 74))
	assert.False(t, ok)

	exact := strings.Repeat("b", 72)
	h, err = HashPassword(exact, bcrypt.MinCost)
	require.NoError(t, err)
	ok, _ = VerifyPassword(h, exact)
	assert.True(t, ok)
}
