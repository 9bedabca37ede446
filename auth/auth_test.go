package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	assert.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPassword("hunter2", hash))
	assert.False(t, CheckPassword("hunter3", hash))
	assert.False(t, CheckPassword("hunter2", "not-a-hash"))
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)

	tok, err := tokens.Issue("user-123")
	assert.NoError(t, err)

	sub, err := tokens.Subject(tok)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", sub)
}

func TestTokenExpired(t *testing.T) {
	tokens := NewTokens("secret", -time.Minute)

	tok, err := tokens.Issue("user-123")
	assert.NoError(t, err)

	_, err = tokens.Subject(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issued, err := NewTokens("secret-a", time.Hour).Issue("user-123")
	assert.NoError(t, err)

	_, err = NewTokens("secret-b", time.Hour).Subject(issued)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := tokens.Subject(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestTokenMissingSubject(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)

	tok, err := tokens.Issue("")
	assert.NoError(t, err)

	_, err = tokens.Subject(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
