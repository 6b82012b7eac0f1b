package services

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func newTestKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	assert.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return key, string(publicPEM)
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	assert.NoError(t, err)
	return signed
}

func TestRSAVerifierAcceptsValidToken(t *testing.T) {
	key, publicPEM := newTestKeyPair(t)
	verifier, err := NewRSAVerifier(publicPEM)
	assert.NoError(t, err)

	tokenString := signToken(t, key, jwt.MapClaims{
		"email": "jane@example.com",
		"name":  "Jane Doe",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	principal, err := verifier.Verify(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "jane@example.com", principal.Email)
	assert.Equal(t, "Jane Doe", principal.Name)
}

func TestRSAVerifierRejectsWrongKey(t *testing.T) {
	_, publicPEM := newTestKeyPair(t)
	otherKey, _ := newTestKeyPair(t)
	verifier, err := NewRSAVerifier(publicPEM)
	assert.NoError(t, err)

	tokenString := signToken(t, otherKey, jwt.MapClaims{
		"email": "jane@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	_, err = verifier.Verify(tokenString)
	assert.Error(t, err)
}

func TestRSAVerifierRejectsExpiredToken(t *testing.T) {
	key, publicPEM := newTestKeyPair(t)
	verifier, err := NewRSAVerifier(publicPEM)
	assert.NoError(t, err)

	tokenString := signToken(t, key, jwt.MapClaims{
		"email": "jane@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})

	_, err = verifier.Verify(tokenString)
	assert.Error(t, err)
}

func TestRSAVerifierRejectsUnexpectedSigningMethod(t *testing.T) {
	_, publicPEM := newTestKeyPair(t)
	verifier, err := NewRSAVerifier(publicPEM)
	assert.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "jane@example.com"})
	signed, err := token.SignedString([]byte("shared-secret"))
	assert.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.Error(t, err)
}

func TestRSAVerifierRejectsMissingEmailClaim(t *testing.T) {
	key, publicPEM := newTestKeyPair(t)
	verifier, err := NewRSAVerifier(publicPEM)
	assert.NoError(t, err)

	tokenString := signToken(t, key, jwt.MapClaims{
		"name": "Jane Doe",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	_, err = verifier.Verify(tokenString)
	assert.Error(t, err)
}
