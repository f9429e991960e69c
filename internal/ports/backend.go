package ports

import (
	"context"

	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
)

type AuthAPI interface {
	Authenticate(ctx context.Context, mode domain.AuthMode, email, password string) (domain.Session, error)
}

type InterestAPI interface {
	Interests(ctx context.Context, userID string) ([]string, error)
	UpdateInterests(ctx context.Context, userID string, interests []string) error
}

type SuggestionAPI interface {
	Suggest(ctx context.Context, userID string, req domain.FreeTime) (string, error)
}

type HistoryAPI interface {
	History(ctx context.Context, userID string) ([]domain.HistoryEntry, error)
}

type ChatAPI interface {
	Chat(ctx context.Context, userID, suggestion, userMessage string) (string, error)
}
