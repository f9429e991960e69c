package application

import (
	"context"
	"fmt"

	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
	"github.com/Noel007-cse/plot-twist-cli/internal/ports"
)

// Phase is the suggestion request state of the workflow.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRequesting
	PhaseReady
	PhaseFailed
)

// Workflow runs the suggestion cycle for one signed-in user: collect a
// time/energy request, fetch a suggestion, refresh the history list,
// and host the conversation about the current suggestion.
//
// Transitions are split from network effects so the event loop stays
// the only writer: Begin marks the attempt, Fetch runs the call without
// touching state, Apply folds the outcome back in. There is no
// cancellation; an outcome from a superseded attempt is dropped on
// arrival instead.
type Workflow struct {
	suggestions ports.SuggestionAPI
	history     ports.HistoryAPI
	chat        ports.ChatAPI
	clock       ports.Clock

	userID       string
	phase        Phase
	suggestion   string
	entries      []domain.HistoryEntry
	conversation *Conversation
	attempt      int
}

func NewWorkflow(suggestions ports.SuggestionAPI, history ports.HistoryAPI, chat ports.ChatAPI, clock ports.Clock, userID string) *Workflow {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Workflow{
		suggestions: suggestions,
		history:     history,
		chat:        chat,
		clock:       clock,
		userID:      userID,
	}
}

// Attempt identifies one suggestion request.
type Attempt struct {
	Epoch   int
	UserID  string
	Request domain.FreeTime
}

// Outcome is the terminal result of one attempt.
type Outcome struct {
	Epoch      int
	Suggestion string
	Err        error
}

func (w *Workflow) UserID() string { return w.userID }

func (w *Workflow) Phase() Phase { return w.phase }

func (w *Workflow) Requesting() bool { return w.phase == PhaseRequesting }

func (w *Workflow) Suggestion() string { return w.suggestion }

func (w *Workflow) History() []domain.HistoryEntry { return w.entries }

func (w *Workflow) Conversation() *Conversation { return w.conversation }

// Begin starts a new attempt. Requests under ten minutes never leave
// the client, and a second submit while one is in flight is a no-op
// rather than a queued duplicate. The current suggestion and its
// conversation are discarded before any network activity, so a stale
// suggestion is never visible alongside an in-flight request.
func (w *Workflow) Begin(req domain.FreeTime) (Attempt, error) {
	if err := req.Validate(); err != nil {
		return Attempt{}, err
	}
	if !req.Submittable() {
		return Attempt{}, domain.ErrTooLittleTime
	}
	if w.phase == PhaseRequesting {
		return Attempt{}, domain.ErrRequestInFlight
	}

	w.phase = PhaseRequesting
	w.suggestion = ""
	w.conversation = nil
	w.attempt++

	return Attempt{Epoch: w.attempt, UserID: w.userID, Request: req}, nil
}

// Fetch performs the network effect for one attempt. It mutates no
// workflow state and is safe to run off the event loop.
func (w *Workflow) Fetch(ctx context.Context, attempt Attempt) Outcome {
	suggestion, err := w.suggestions.Suggest(ctx, attempt.UserID, attempt.Request)
	return Outcome{Epoch: attempt.Epoch, Suggestion: suggestion, Err: err}
}

// Apply folds an outcome into the workflow and reports whether it was
// current. Stale epochs leave all state untouched: the last submitted
// attempt always wins. On failure the fixed fallback text takes the
// suggestion slot so the user still sees feedback; history must then
// NOT be refreshed. On success a fresh conversation is opened and the
// caller should follow up with a history refresh.
func (w *Workflow) Apply(outcome Outcome) bool {
	if outcome.Epoch != w.attempt || w.phase != PhaseRequesting {
		return false
	}

	if outcome.Err != nil {
		w.phase = PhaseFailed
		w.suggestion = domain.SuggestionFallbackText
		return true
	}

	w.phase = PhaseReady
	w.suggestion = outcome.Suggestion
	w.conversation = NewConversation(w.chat, w.clock, w.userID, outcome.Suggestion)
	return true
}

// RefreshHistory fetches the user's past suggestions. Like Fetch it
// mutates nothing; pair it with ApplyHistory.
func (w *Workflow) RefreshHistory(ctx context.Context) ([]domain.HistoryEntry, error) {
	entries, err := w.history.History(ctx, w.userID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return entries, nil
}

// ApplyHistory replaces the local list wholesale. The server owns
// ordering. A failed refresh keeps whatever was shown before and never
// hides a suggestion that already arrived.
func (w *Workflow) ApplyHistory(entries []domain.HistoryEntry, err error) {
	if err != nil {
		return
	}
	w.entries = entries
}
