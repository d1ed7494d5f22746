package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-resume/internal/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key",
		ExpirationHours: 24,
		Issuer:          config.DefaultJWTIssuer,
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	service := newTestJWTService()

	token, err := service.GenerateToken("ci-runner")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ci-runner", claims.Subject)
	assert.Equal(t, config.DefaultJWTIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)

	subject, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "ci-runner", subject)
}

func TestJWTService_GenerateToken_EmptySubject(t *testing.T) {
	_, err := newTestJWTService().GenerateToken("")
	assert.Error(t, err)
}

func TestJWTService_GenerateToken_UniqueIDs(t *testing.T) {
	service := newTestJWTService()

	first, err := service.GenerateToken("a")
	require.NoError(t, err)
	second, err := service.GenerateToken("a")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_ValidateToken_InvalidSignature(t *testing.T) {
	token, err := newTestJWTService().GenerateToken("a")
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "different", ExpirationHours: 24, Issuer: config.DefaultJWTIssuer})
	_, err = other.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	assert.Contains(t, err.Error(), "invalid token signature")
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	service := newTestJWTService()

	_, err := service.ValidateToken("")
	assert.Error(t, err)

	_, err = service.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	service := newTestJWTService()
	issued := time.Now().Add(-48 * time.Hour)
	service.now = func() time.Time { return issued }

	token, err := service.GenerateToken("a")
	require.NoError(t, err)

	service.now = time.Now
	_, err = service.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_ValidateToken_WrongIssuer(t *testing.T) {
	token, err := newTestJWTService().GenerateToken("a")
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "test-secret-key", ExpirationHours: 24, Issuer: "someone-else"})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "a",
		Issuer:    config.DefaultJWTIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret-key"))
	require.NoError(t, err)

	_, err = newTestJWTService().ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	service := newTestJWTService()
	token, err := service.GenerateToken("web")
	require.NoError(t, err)

	claims, err := service.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	subject, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "web", subject)

	_, err = service.AsTokenValidator().ValidateToken("garbage")
	assert.Error(t, err)
}
