package sessiontoken

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("secret")
	userId := uuid.New()

	token, err := codec.Sign(userId, "sess-1", time.Hour)
	require.NoError(t, err)

	claims, err := codec.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userId.String(), claims.UserId)
	assert.Equal(t, "sess-1", claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestCodec_Rejects(t *testing.T) {
	codec := NewCodec("secret")
	userId := uuid.New()

	expired, err := codec.Sign(userId, "sess-1", -time.Minute)
	require.NoError(t, err)
	foreign, err := NewCodec("other").Sign(userId, "sess-1", time.Hour)
	require.NoError(t, err)
	noJti, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserId: userId.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong secret", foreign},
		{"missing jti", noJti},
		{"garbage", "not-a-token"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Parse(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
