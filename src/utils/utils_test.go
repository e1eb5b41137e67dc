package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer(t *testing.T) {
	_, err := NewTokenIssuer("")
	assert.Error(t, err)

	issuer, err := NewTokenIssuer("s3cret")
	require.NoError(t, err)

	token, err := issuer.Generate("alice")
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Admin)

	other, _ := NewTokenIssuer("different")
	_, err = other.Parse(token)
	assert.Error(t, err)

	_, err = issuer.Parse("")
	assert.Error(t, err)
}

func TestTokenIssuerExpiry(t *testing.T) {
	issuer, err := NewTokenIssuer("s3cret")
	require.NoError(t, err)
	issued := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issued }

	token, err := issuer.Generate("alice")
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(adminTokenTTL + time.Minute) }
	_, err = issuer.Parse(token)
	assert.Error(t, err)
}

func TestSecretEqual(t *testing.T) {
	assert.True(t, SecretEqual("open-sesame", "open-sesame"))
	assert.False(t, SecretEqual("open-sesame", "open-sesam"))
	assert.False(t, SecretEqual("open-sesame", ""))
	assert.False(t, SecretEqual("", ""))
}
