package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionToken_Success(t *testing.T) {
	session, err := GenerateSessionToken("test-issuer", 123, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, session.SignedString)
	assert.Equal(t, session.SignedString, session.String())
	require.NotNil(t, session.Token)
	assert.Equal(t, int64(123), session.UID)
	assert.Equal(t, "test-issuer", session.Issuer)
	assert.Equal(t, "123", session.Subject)
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		uid      int64
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", 1, time.Hour, "key"},
		{"zero duration", "iss", 1, 0, "key"},
		{"empty key", "iss", 1, time.Hour, ""},
		{"zero uid", "iss", 0, time.Hour, "key"},
		{"negative uid", "iss", -5, time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, tt.uid, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseSessionToken_RoundTrip(t *testing.T) {
	generated, err := GenerateSessionToken("test-issuer", 456, 5*time.Minute, "secret-key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseSessionToken(generated.SignedString, "secret-key", "test-issuer")
	require.NoError(t, err)

	assert.Equal(t, int64(456), parsed.UID)
	assert.Equal(t, generated.SignedString, parsed.SignedString)

	uid, err := parsed.GetUID()
	require.NoError(t, err)
	assert.Equal(t, int64(456), uid)
}

func TestValidateAndParseSessionToken_Rejects(t *testing.T) {
	valid, err := GenerateSessionToken("real-issuer", 1, time.Hour, "key")
	require.NoError(t, err)

	expired, err := GenerateSessionToken("real-issuer", 1, -time.Second, "key")
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
		target error
	}{
		{name: "wrong key", token: valid.SignedString, key: "other", issuer: "real-issuer", target: jwt.ErrTokenSignatureInvalid},
		{name: "wrong issuer", token: valid.SignedString, key: "key", issuer: "fake-issuer", target: jwt.ErrTokenInvalidIssuer},
		{name: "expired", token: expired.SignedString, key: "key", issuer: "real-issuer", target: jwt.ErrTokenExpired},
		{name: "malformed", token: "not.a.token", key: "key", issuer: "real-issuer", target: jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseSessionToken(tt.token, tt.key, tt.issuer)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestValidateAndParseSessionToken_NonNumericSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseSessionToken(signed, "key", "iss")
	assert.Error(t, err)
}
