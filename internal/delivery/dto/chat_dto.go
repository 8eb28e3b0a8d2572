package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// SendChatMessageRequest carries the user's chat input. Text is not marked
// required: blank input is a no-op for the assistant session, not an error.
type SendChatMessageRequest struct {
	Text string `json:"text" validate:"max=2000"`
}

type HealthSearchRequest struct {
	Query string `json:"query" validate:"required,max=500"`
}

// Response DTOs

type ChatMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatExchangeResponse holds the messages appended by a single send: the
// user message followed by the assistant reply, or nothing for a no-op.
type ChatExchangeResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
}

type ChatTranscriptResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
	Total    int                   `json:"total"`
}

type HealthSearchResponse struct {
	Result string `json:"result"`
}
