package application

import (
	"context"
	"time"

	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
)

type stubAuthAPI struct {
	session domain.Session
	err     error
	calls   int
}

func (s *stubAuthAPI) Authenticate(_ context.Context, _ domain.AuthMode, _, _ string) (domain.Session, error) {
	s.calls++
	return s.session, s.err
}

type stubInterestAPI struct {
	interests   []string
	getErr      error
	updateErr   error
	getCalls    int
	updateCalls int
	saved       []string
}

func (s *stubInterestAPI) Interests(_ context.Context, _ string) ([]string, error) {
	s.getCalls++
	return s.interests, s.getErr
}

func (s *stubInterestAPI) UpdateInterests(_ context.Context, _ string, interests []string) error {
	s.updateCalls++
	s.saved = interests
	return s.updateErr
}

type stubSuggestionAPI struct {
	suggestion string
	err        error
	calls      int
	lastReq    domain.FreeTime
}

func (s *stubSuggestionAPI) Suggest(_ context.Context, _ string, req domain.FreeTime) (string, error) {
	s.calls++
	s.lastReq = req
	return s.suggestion, s.err
}

type stubHistoryAPI struct {
	entries []domain.HistoryEntry
	err     error
	calls   int
}

func (s *stubHistoryAPI) History(_ context.Context, _ string) ([]domain.HistoryEntry, error) {
	s.calls++
	return s.entries, s.err
}

type stubChatAPI struct {
	response       string
	err            error
	calls          int
	lastSuggestion string
	lastMessage    string
}

func (s *stubChatAPI) Chat(_ context.Context, _ string, suggestion, userMessage string) (string, error) {
	s.calls++
	s.lastSuggestion = suggestion
	s.lastMessage = userMessage
	return s.response, s.err
}

type stubSessionStore struct {
	session    domain.Session
	restoreErr error
	saveErr    error
	clearErr   error
	saved      []domain.Session
	clearCalls int
}

func (s *stubSessionStore) Restore(_ context.Context) (domain.Session, error) {
	if s.restoreErr != nil {
		return domain.Session{}, s.restoreErr
	}
	return s.session, nil
}

func (s *stubSessionStore) Save(_ context.Context, session domain.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.session = session
	s.saved = append(s.saved, session)
	return nil
}

func (s *stubSessionStore) Clear(_ context.Context) error {
	s.clearCalls++
	if s.clearErr != nil {
		return s.clearErr
	}
	s.session = domain.Session{}
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}
