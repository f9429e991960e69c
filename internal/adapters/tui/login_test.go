package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
)

func TestErrorTextServerMessageVerbatim(t *testing.T) {
	err := &domain.ServerError{Message: "Invalid credentials"}

	assert.Equal(t, "Invalid credentials", errorText(err))
}

func TestErrorTextWrappedServerMessageVerbatim(t *testing.T) {
	err := fmt.Errorf("login: %w", &domain.ServerError{Message: "User already exists"})

	assert.Equal(t, "User already exists", errorText(err))
}

func TestErrorTextConnectionFailureIsGeneric(t *testing.T) {
	err := fmt.Errorf("login: %w: %v", domain.ErrConnection, errors.New("dial tcp 127.0.0.1:3001: connection refused"))

	got := errorText(err)

	assert.Equal(t, domain.ConnectionFailedText, got)
	assert.NotContains(t, got, "dial tcp", "transport details must not leak into the screen")
}

func TestErrorTextFallsBackToErrorString(t *testing.T) {
	err := errors.New("email and password are required")

	assert.Equal(t, "email and password are required", errorText(err))
}
