package domain

import "time"

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// MessageRole tags who authored a message: a visitor, a local agent reply or the remote AI.
type MessageRole string

const (
	MessageRoleVisitor  MessageRole = "visitor"
	MessageRoleAgent    MessageRole = "agent"
	MessageRoleDeepSeek MessageRole = "deepseek"
)

// ChatMessage is never mutated after it is appended to a session.
type ChatMessage struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Sender    Sender      `json:"sender"`
	Timestamp time.Time   `json:"timestamp"`
	Role      MessageRole `json:"role,omitempty"`
}
