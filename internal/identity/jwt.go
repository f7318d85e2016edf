package identity

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// HMACVerifier verifies shared-secret JWTs. It stands in for the hosted
// identity provider in development and tests; the claim shape mirrors what
// the Firebase verifier extracts.
type HMACVerifier struct {
	secret []byte
}

func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

func (v *HMACVerifier) Verify(_ context.Context, tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}

	ident := &Identity{SubjectID: sub}
	if email, ok := claims["email"].(string); ok {
		ident.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		ident.Name = name
	}

	return ident, nil
}

// IssueToken mints a token the verifier accepts. Used by the seed tool and
// tests to produce credentials without a provider round trip.
func (v *HMACVerifier) IssueToken(subjectID, email, name string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subjectID,
		"email": email,
		"name":  name,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
