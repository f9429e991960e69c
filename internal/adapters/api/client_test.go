package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
)

func TestAuthenticateParsesSessionTriple(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(t, w, map[string]any{"token": "tok", "userId": "u1", "email": "a@b.com"})
	}))
	defer server.Close()

	client := New(server.URL)
	session, err := client.Authenticate(context.Background(), domain.AuthModeLogin, "a@b.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "/login", gotPath)
	assert.Equal(t, "a@b.com", gotBody["email"])
	assert.Equal(t, "secret", gotBody["password"])
	assert.Equal(t, domain.Session{Token: "tok", UserID: "u1", Email: "a@b.com"}, session)
}

func TestAuthenticateSignupHitsSignupPath(t *testing.T) {
	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeJSON(t, w, map[string]any{"token": "tok", "userId": "u1", "email": "a@b.com"})
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Authenticate(context.Background(), domain.AuthModeSignup, "a@b.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "/signup", gotPath)
}

func TestAuthenticateReturnsServerErrorVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		writeJSON(t, w, map[string]any{"error": "Invalid credentials"})
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Authenticate(context.Background(), domain.AuthModeLogin, "a@b.com", "wrong")

	var serverErr *domain.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "Invalid credentials", serverErr.Message)
	assert.NotErrorIs(t, err, domain.ErrConnection)
}

func TestAuthenticateWrapsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	client := New(server.URL)
	_, err := client.Authenticate(context.Background(), domain.AuthModeLogin, "a@b.com", "secret")

	require.ErrorIs(t, err, domain.ErrConnection)
}

func TestAuthenticateWrapsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Authenticate(context.Background(), domain.AuthModeLogin, "a@b.com", "secret")

	require.ErrorIs(t, err, domain.ErrConnection)
}

func TestInterestsSendsUserID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get-interests", r.URL.Path)
		assert.Equal(t, "u1", r.URL.Query().Get("userId"))
		writeJSON(t, w, map[string]any{"interests": []string{"Music", "Art"}})
	}))
	defer server.Close()

	client := New(server.URL)
	interests, err := client.Interests(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, []string{"Music", "Art"}, interests)
}

func TestInterestsEmptyObjectMeansNone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{})
	}))
	defer server.Close()

	client := New(server.URL)
	interests, err := client.Interests(context.Background(), "u1")

	require.NoError(t, err)
	assert.Empty(t, interests)
}

func TestUpdateInterestsPostsSelection(t *testing.T) {
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/update-interests", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(t, w, map[string]any{"success": true})
	}))
	defer server.Close()

	client := New(server.URL)
	err := client.UpdateInterests(context.Background(), "u1", []string{"Music", "Reading"})

	require.NoError(t, err)
	assert.Equal(t, "u1", gotBody["userId"])
	assert.Equal(t, []any{"Music", "Reading"}, gotBody["interests"])
}

func TestUpdateInterestsMissingSuccessFlagFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{})
	}))
	defer server.Close()

	client := New(server.URL)
	err := client.UpdateInterests(context.Background(), "u1", []string{"Music"})

	require.ErrorIs(t, err, domain.ErrConnection)
}

func TestSuggestSendsRequestParameters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/suggest", r.URL.Path)
		assert.Equal(t, "45", r.URL.Query().Get("minutes"))
		assert.Equal(t, "high", r.URL.Query().Get("energy"))
		assert.Equal(t, "u1", r.URL.Query().Get("userId"))
		writeJSON(t, w, map[string]any{"suggestion": "Go bouldering"})
	}))
	defer server.Close()

	client := New(server.URL)
	suggestion, err := client.Suggest(context.Background(), "u1", domain.FreeTime{Minutes: 45, Energy: domain.EnergyHigh})

	require.NoError(t, err)
	assert.Equal(t, "Go bouldering", suggestion)
}

func TestSuggestEmptySuggestionIsConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{"suggestion": ""})
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Suggest(context.Background(), "u1", domain.FreeTime{Minutes: 30, Energy: domain.EnergyLow})

	require.ErrorIs(t, err, domain.ErrConnection)
}

func TestHistoryParsesEntries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/history", r.URL.Path)
		assert.Equal(t, "u1", r.URL.Query().Get("userId"))
		writeJSON(t, w, []map[string]any{
			{
				"_id":        "h2",
				"suggestion": "Stretch",
				"minutes":    15,
				"energy":     "low",
				"createdAt":  "2026-08-30T18:04:05Z",
			},
			{
				"_id":        "h1",
				"suggestion": "Run",
				"minutes":    45,
				"energy":     "high",
				"createdAt":  "not a timestamp",
			},
		})
	}))
	defer server.Close()

	client := New(server.URL)
	entries, err := client.History(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "h2", entries[0].ID)
	assert.Equal(t, "Stretch", entries[0].Suggestion)
	assert.Equal(t, 15, entries[0].Minutes)
	assert.Equal(t, domain.EnergyLow, entries[0].Energy)
	assert.Equal(t, time.Date(2026, 8, 30, 18, 4, 5, 0, time.UTC), entries[0].CreatedAt)

	assert.True(t, entries[1].CreatedAt.IsZero(), "an unparseable timestamp degrades to zero, not an error")
}

func TestChatPostsPromptFields(t *testing.T) {
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(t, w, map[string]any{"response": "Try the park."})
	}))
	defer server.Close()

	client := New(server.URL)
	response, err := client.Chat(context.Background(), "u1", "Go for a walk", "where?")

	require.NoError(t, err)
	assert.Equal(t, "Try the park.", response)
	assert.Equal(t, "u1", gotBody["userId"])
	assert.Equal(t, "Go for a walk", gotBody["suggestion"])
	assert.Equal(t, "where?", gotBody["userMessage"])
}

func TestChatServerErrorVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		writeJSON(t, w, map[string]any{"error": "model unavailable"})
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Chat(context.Background(), "u1", "Go for a walk", "where?")

	var serverErr *domain.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "model unavailable", serverErr.Message)
}

func TestEndpointRejectsBadBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{name: "empty", baseURL: ""},
		{name: "no scheme", baseURL: "localhost:3001"},
		{name: "wrong scheme", baseURL: "ftp://localhost:3001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := New(tt.baseURL)
			_, err := client.Interests(context.Background(), "u1")
			require.Error(t, err)
		})
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, payload any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(payload))
}
