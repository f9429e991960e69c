package application

import (
	"context"
	"fmt"

	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
	"github.com/Noel007-cse/plot-twist-cli/internal/ports"
)

// Screen is the single surface the client shows at any moment.
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenLogin
	ScreenInterests
	ScreenWorkflow
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenInterests:
		return "interests"
	case ScreenWorkflow:
		return "workflow"
	default:
		return "loading"
	}
}

// Collaborators bundles the backend services the client consumes.
type Collaborators struct {
	Auth        ports.AuthAPI
	Interests   ports.InterestAPI
	Suggestions ports.SuggestionAPI
	History     ports.HistoryAPI
	Chat        ports.ChatAPI
}

// Orchestrator sequences session restore, the interest gate, and the
// workflow, and reacts to logout and edit-interests requests. All
// transitions run on the event loop. Async completions carry the
// generation they were minted under; once logout or a fresh login has
// moved the generation on, late arrivals are ignored rather than
// aborted.
type Orchestrator struct {
	store   ports.SessionStore
	auth    *AuthGateway
	gate    *InterestGate
	backend Collaborators
	clock   ports.Clock

	screen     Screen
	session    domain.Session
	workflow   *Workflow
	generation int
}

func NewOrchestrator(store ports.SessionStore, backend Collaborators, clock ports.Clock) *Orchestrator {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Orchestrator{
		store:   store,
		auth:    NewAuthGateway(backend.Auth),
		gate:    NewInterestGate(backend.Interests),
		backend: backend,
		clock:   clock,
		screen:  ScreenLoading,
	}
}

func (o *Orchestrator) Screen() Screen { return o.screen }

func (o *Orchestrator) Session() domain.Session { return o.session }

func (o *Orchestrator) Workflow() *Workflow { return o.workflow }

func (o *Orchestrator) Auth() *AuthGateway { return o.auth }

func (o *Orchestrator) Gate() *InterestGate { return o.gate }

// GateQuery asks whether a user may skip interest selection.
type GateQuery struct {
	Generation int
	UserID     string
}

// GateResult answers a GateQuery.
type GateResult struct {
	Generation int
	Status     domain.GateStatus
}

// Restore reads the stored session at startup. With no usable session
// the client goes straight to login; with one it stays on the loading
// screen and hands back the gate query to resolve.
func (o *Orchestrator) Restore(ctx context.Context) (GateQuery, bool) {
	session, err := o.store.Restore(ctx)
	if err != nil || !session.Valid() {
		o.screen = ScreenLogin
		return GateQuery{}, false
	}

	o.session = session
	o.screen = ScreenLoading
	return o.gateQuery(), true
}

// ResolveGate performs the gate's network query. No state is touched;
// feed the result to ApplyGate on the event loop.
func (o *Orchestrator) ResolveGate(ctx context.Context, query GateQuery) GateResult {
	return GateResult{
		Generation: query.Generation,
		Status:     o.gate.Resolve(ctx, query.UserID),
	}
}

// ApplyGate routes the user per the gate status and reports whether
// the result was current. Results minted under an older generation
// (logout or re-login happened meanwhile) change nothing.
func (o *Orchestrator) ApplyGate(result GateResult) bool {
	if result.Generation != o.generation || !o.session.Valid() {
		return false
	}

	if result.Status == domain.GateOpen {
		o.enterWorkflow()
	} else {
		o.screen = ScreenInterests
	}
	return true
}

// CompleteLogin persists a freshly authenticated session and hands
// back the gate query for a new resolve. A gate resolution from before
// this login is never trusted: the generation moves on and the caller
// resolves again.
func (o *Orchestrator) CompleteLogin(ctx context.Context, session domain.Session) (GateQuery, error) {
	if !session.Valid() {
		return GateQuery{}, fmt.Errorf("incomplete session: %w", domain.ErrNoSession)
	}

	if err := o.store.Save(ctx, session); err != nil {
		return GateQuery{}, fmt.Errorf("save session: %w", err)
	}

	o.session = session
	o.generation++
	o.screen = ScreenLoading
	return o.gateQuery(), nil
}

// InterestsSaved transitions to the workflow after a successful save.
// The just-saved set is trusted as the new truth; no re-resolve.
func (o *Orchestrator) InterestsSaved() {
	if !o.session.Valid() {
		return
	}
	o.enterWorkflow()
}

// EditInterests returns to interest selection keeping the session.
func (o *Orchestrator) EditInterests() {
	if !o.session.Valid() {
		return
	}
	o.workflow = nil
	o.screen = ScreenInterests
}

// Logout clears the stored triple and drops all in-memory workflow,
// chat, and history state. Clearing is idempotent; in-flight
// completions die on the generation check when they land.
func (o *Orchestrator) Logout(ctx context.Context) error {
	err := o.store.Clear(ctx)

	o.session = domain.Session{}
	o.workflow = nil
	o.generation++
	o.screen = ScreenLogin

	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (o *Orchestrator) gateQuery() GateQuery {
	return GateQuery{Generation: o.generation, UserID: o.session.UserID}
}

// enterWorkflow starts a fresh suggestion cycle. Workflow state never
// survives leaving the screen; history is reloaded eagerly by the
// caller on entry.
func (o *Orchestrator) enterWorkflow() {
	o.workflow = NewWorkflow(o.backend.Suggestions, o.backend.History, o.backend.Chat, o.clock, o.session.UserID)
	o.screen = ScreenWorkflow
}
