package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_SignVerify(t *testing.T) {
	sessions := NewSessions("test-secret")
	userID := uuid.New()

	token, err := sessions.Sign(userID, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := sessions.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestSessions_VerifyRejectsTampered(t *testing.T) {
	sessions := NewSessions("test-secret")

	token, err := sessions.Sign(uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = sessions.Verify(token + "x")
	assert.Error(t, err)

	_, err = sessions.Verify("not-a-token")
	assert.Error(t, err)
}

func TestSessions_VerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewSessions("secret-a").Sign(uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = NewSessions("secret-b").Verify(token)
	assert.Error(t, err)
}
