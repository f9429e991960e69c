package ports

import (
	"context"

	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
)

// SessionStore persists the identity triple across restarts. A reader
// must never observe a partially written triple.
type SessionStore interface {
	Restore(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}
