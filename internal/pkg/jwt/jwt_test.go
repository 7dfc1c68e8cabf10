package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbook/internal/domain"
)

func TestGenerateValidate_RoundTrip(t *testing.T) {
	svc := New("secret", time.Hour)
	id := domain.Identity{ID: "u-1", Name: "Ana", Email: "ana@example.com"}

	tok, err := svc.GenerateToken(id)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, id, claims.Identity())
}

func TestValidate_WrongSecret(t *testing.T) {
	tok, err := New("one", time.Hour).GenerateToken(domain.Identity{ID: "u-1"})
	require.NoError(t, err)

	_, err = New("two", time.Hour).ValidateToken(tok)
	assert.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	svc := New("secret", time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }
	tok, err := svc.GenerateToken(domain.Identity{ID: "u-1"})
	require.NoError(t, err)

	_, err = New("secret", time.Minute).ValidateToken(tok)
	assert.Error(t, err)
}

func TestValidate_MissingUserID(t *testing.T) {
	svc := New("secret", time.Hour)
	tok, err := svc.GenerateToken(domain.Identity{})
	require.NoError(t, err)

	_, err = svc.ValidateToken(tok)
	assert.Error(t, err)
}
