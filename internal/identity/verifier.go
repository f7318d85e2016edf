package identity

import (
	"context"
	"errors"

	"alpineair/internal/shared/config"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Identity is the claim set the application cares about. SubjectID is the
// provider's stable user identifier and keys the local user mirror.
type Identity struct {
	SubjectID string
	Email     string
	Name      string
}

// Verifier checks a bearer credential against the identity provider. The
// rest of the application only ever sees this interface, never a provider
// client.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// NewVerifier builds the verifier selected by configuration.
func NewVerifier(cfg *config.Config) (Verifier, error) {
	switch cfg.Auth.Provider {
	case "hmac":
		return NewHMACVerifier(cfg.Auth.HMACSecret), nil
	default:
		return NewFirebaseVerifier(context.Background(), cfg.Auth)
	}
}
