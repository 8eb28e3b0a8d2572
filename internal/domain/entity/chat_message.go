package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatSender identifies who produced a chat message
type ChatSender string

const (
	ChatSenderUser ChatSender = "user"
	ChatSenderAI   ChatSender = "ai"
	// ChatSenderDoctor is reserved for a future live-chat channel and is
	// never produced by the assistant session.
	ChatSenderDoctor ChatSender = "doctor"
)

// ChatMessage is a single entry in the assistant transcript. The transcript
// is an ordered, append-only sequence; messages are never edited or removed
// once appended.
type ChatMessage struct {
	ID        uuid.UUID  `json:"id"`
	Sender    ChatSender `json:"sender"`
	Text      string     `json:"text"`
	Timestamp time.Time  `json:"timestamp"`
}
