package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
	"github.com/Noel007-cse/plot-twist-cli/internal/ports"
)

// AuthGateway performs the login and signup exchanges. It holds no
// state and persists nothing; saving the resulting session is the
// orchestrator's job, which keeps the gateway independently testable.
type AuthGateway struct {
	api ports.AuthAPI
}

func NewAuthGateway(api ports.AuthAPI) *AuthGateway {
	return &AuthGateway{api: api}
}

// Submit runs one auth exchange. A structured backend error comes back
// as *domain.ServerError with the server's message verbatim; transport
// and parse failures wrap domain.ErrConnection.
func (g *AuthGateway) Submit(ctx context.Context, mode domain.AuthMode, email, password string) (domain.Session, error) {
	if !mode.Valid() {
		return domain.Session{}, fmt.Errorf("unsupported auth mode %q", mode)
	}

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.Session{}, errors.New("email and password are required")
	}

	session, err := g.api.Authenticate(ctx, mode, email, password)
	if err != nil {
		return domain.Session{}, err
	}
	if !session.Valid() {
		return domain.Session{}, fmt.Errorf("%s response missing token or user id: %w", mode, domain.ErrConnection)
	}

	return session, nil
}
