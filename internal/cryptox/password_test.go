package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap params keep the suite fast
var testParams = Params{Memory: 1024, Time: 1, Threads: 1, SaltLen: 8, KeyLen: 16}

func TestHashPassword_Format(t *testing.T) {
	h, err := HashPassword([]byte("s3cret"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h, "$argon2id$v=19$m=65536,t=1,p=4$"), h)
	assert.Len(t, strings.Split(h, "$"), 6)
}

func TestHashPassword_SaltDiffers(t *testing.T) {
	a, err := HashPasswordWithParams([]byte("pw"), testParams)
	require.NoError(t, err)
	b, err := HashPasswordWithParams([]byte("pw"), testParams)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifyPassword(t *testing.T) {
	h, err := HashPasswordWithParams([]byte("correct horse"), testParams)
	require.NoError(t, err)

	ok, err := VerifyPassword(h, []byte("correct horse"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(h, []byte("battery staple"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_Malformed(t *testing.T) {
	for _, s := range []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=x$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$!!!$a2V5",
		"$argon2id$v=19$m=1024,t=0,p=1$c2FsdA$a2V5",
	} {
		ok, err := VerifyPassword(s, []byte("pw"))
		assert.ErrorIs(t, err, ErrMalformedHash, s)
		assert.False(t, ok)
	}
}

func TestHashPasswordWithParams_Invalid(t *testing.T) {
	_, err := HashPasswordWithParams([]byte("pw"), Params{})
	require.Error(t, err)
}
