package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn in the chat about the current suggestion. The
// log is append-only and lives exactly as long as that suggestion.
type Message struct {
	Role Role
	Text string
	At   time.Time
}
