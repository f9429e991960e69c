package application

import (
	"context"
	"fmt"

	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
	"github.com/Noel007-cse/plot-twist-cli/internal/ports"
)

// InterestGate decides whether interest selection must precede the
// workflow, and owns the save that opens it.
type InterestGate struct {
	api ports.InterestAPI
}

func NewInterestGate(api ports.InterestAPI) *InterestGate {
	return &InterestGate{api: api}
}

// Resolve queries the user's stored interests. The gate is Closed when
// the set is empty, the response malformed, or the call fails at all:
// on uncertainty the client re-asks instead of silently granting
// access.
func (g *InterestGate) Resolve(ctx context.Context, userID string) domain.GateStatus {
	interests, err := g.api.Interests(ctx, userID)
	if err != nil || len(interests) == 0 {
		return domain.GateClosed
	}
	return domain.GateOpen
}

// Save commits a non-empty selection. Callers must block the empty
// case in the UI; reaching here with no interests is a contract
// violation, not a recoverable condition. On success the caller may
// treat the gate as open without a re-resolve round trip.
func (g *InterestGate) Save(ctx context.Context, userID string, interests []string) error {
	if len(interests) == 0 {
		return domain.ErrEmptyInterests
	}

	if err := g.api.UpdateInterests(ctx, userID, interests); err != nil {
		return fmt.Errorf("update interests: %w", err)
	}

	return nil
}
