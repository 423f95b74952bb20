package jwtmanager

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(now time.Time) *JWTManager {
	return &JWTManager{
		secret: []byte("test-secret"),
		ttl:    time.Hour,
		now:    func() time.Time { return now },
	}
}

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := newTestManager(time.Now())

	token, err := manager.GenerateSessionToken("session-123")
	require.NoError(t, err)

	sessionID, err := manager.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-123", sessionID)
}

func TestJWTManager_Rejects(t *testing.T) {
	t.Run("empty session id", func(t *testing.T) {
		_, err := newTestManager(time.Now()).GenerateSessionToken(" ")
		assert.Error(t, err)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := newTestManager(time.Now()).ParseSessionToken("")
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		issued := newTestManager(time.Now().Add(-2 * time.Hour))
		token, err := issued.GenerateSessionToken("session-123")
		require.NoError(t, err)

		_, err = newTestManager(time.Now()).ParseSessionToken(token)
		assert.Error(t, err)
	})

	t.Run("different secret", func(t *testing.T) {
		token, err := newTestManager(time.Now()).GenerateSessionToken("session-123")
		require.NoError(t, err)

		other := newTestManager(time.Now())
		other.secret = []byte("another-secret")
		_, err = other.ParseSessionToken(token)
		assert.Error(t, err)
	})

	t.Run("unsigned token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			claimSessionID: "session-123",
			"exp":          time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = newTestManager(time.Now()).ParseSessionToken(signed)
		assert.Error(t, err)
	})

	t.Run("token without session id", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = newTestManager(time.Now()).ParseSessionToken(signed)
		assert.Error(t, err)
	})
}
