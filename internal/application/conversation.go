package application

import (
	"context"
	"strings"

	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
	"github.com/Noel007-cse/plot-twist-cli/internal/ports"
)

// Conversation is the ephemeral chat about one suggestion. It is
// created when a suggestion arrives, discarded with it, and never
// persisted.
type Conversation struct {
	api   ports.ChatAPI
	clock ports.Clock

	userID     string
	suggestion string
	messages   []domain.Message
	pending    bool
	turn       int
}

func NewConversation(api ports.ChatAPI, clock ports.Clock, userID, suggestion string) *Conversation {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Conversation{
		api:        api,
		clock:      clock,
		userID:     userID,
		suggestion: suggestion,
	}
}

// Prompt is one user turn on its way to the assistant.
type Prompt struct {
	Turn       int
	UserID     string
	Suggestion string
	Text       string
}

// Reply is the assistant's answer to one prompt.
type Reply struct {
	Turn int
	Text string
	Err  error
}

func (c *Conversation) Suggestion() string { return c.suggestion }

func (c *Conversation) Messages() []domain.Message { return c.messages }

func (c *Conversation) Pending() bool { return c.pending }

// Send appends the user's message optimistically, before the round
// trip, and marks a reply pending. Blank input is rejected before any
// state changes. Callers should block further sends while one is
// pending; if they do not, replies are appended in arrival order.
func (c *Conversation) Send(text string) (Prompt, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Prompt{}, domain.ErrBlankMessage
	}

	c.messages = append(c.messages, domain.Message{
		Role: domain.RoleUser,
		Text: text,
		At:   c.clock.Now(),
	})
	c.pending = true
	c.turn++

	return Prompt{Turn: c.turn, UserID: c.userID, Suggestion: c.suggestion, Text: text}, nil
}

// Fetch performs the chat round trip without touching state.
func (c *Conversation) Fetch(ctx context.Context, prompt Prompt) Reply {
	response, err := c.api.Chat(ctx, prompt.UserID, prompt.Suggestion, prompt.Text)
	return Reply{Turn: prompt.Turn, Text: response, Err: err}
}

// Apply appends the assistant's reply and clears the pending flag on
// both the success and failure paths, so the thinking indicator can
// never get stuck. A failed turn appends the fixed connection-error
// text instead of silently dropping the exchange.
func (c *Conversation) Apply(reply Reply) {
	c.pending = false

	text := reply.Text
	if reply.Err != nil {
		text = domain.ChatErrorText
	}

	c.messages = append(c.messages, domain.Message{
		Role: domain.RoleAssistant,
		Text: text,
		At:   c.clock.Now(),
	})
}
