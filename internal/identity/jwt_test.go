package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestHMACVerifier_RoundTrip(t *testing.T) {
	verifier := NewHMACVerifier("test-secret")

	token, err := verifier.IssueToken("subject-123", "pilot@example.com", "Pat Pilot", time.Hour)
	assert.NoError(t, err)

	ident, err := verifier.Verify(context.Background(), token)

	assert.NoError(t, err)
	assert.Equal(t, "subject-123", ident.SubjectID)
	assert.Equal(t, "pilot@example.com", ident.Email)
	assert.Equal(t, "Pat Pilot", ident.Name)
}

func TestHMACVerifier_WrongSecretRejected(t *testing.T) {
	issuer := NewHMACVerifier("secret-a")
	verifier := NewHMACVerifier("secret-b")

	token, err := issuer.IssueToken("subject-123", "", "", time.Hour)
	assert.NoError(t, err)

	_, err = verifier.Verify(context.Background(), token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHMACVerifier_ExpiredTokenRejected(t *testing.T) {
	verifier := NewHMACVerifier("test-secret")

	token, err := verifier.IssueToken("subject-123", "", "", -time.Minute)
	assert.NoError(t, err)

	_, err = verifier.Verify(context.Background(), token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHMACVerifier_MissingSubjectRejected(t *testing.T) {
	secret := "test-secret"
	verifier := NewHMACVerifier(secret)

	claims := jwt.MapClaims{
		"email": "anon@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)

	_, err = verifier.Verify(context.Background(), token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHMACVerifier_UnexpectedSigningMethodRejected(t *testing.T) {
	verifier := NewHMACVerifier("test-secret")

	// alg=none tokens must never pass
	claims := jwt.MapClaims{"sub": "subject-123"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = verifier.Verify(context.Background(), token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHMACVerifier_GarbageTokenRejected(t *testing.T) {
	verifier := NewHMACVerifier("test-secret")

	_, err := verifier.Verify(context.Background(), "not.a.jwt")

	assert.ErrorIs(t, err, ErrInvalidToken)
}
