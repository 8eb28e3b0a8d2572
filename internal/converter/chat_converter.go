package converter

import (
	"go-clinic-directory/internal/delivery/dto"
	"go-clinic-directory/internal/domain/entity"
)

// ChatMessageToResponse converts a ChatMessage entity to its DTO
func ChatMessageToResponse(message *entity.ChatMessage) *dto.ChatMessageResponse {
	if message == nil {
		return nil
	}

	return &dto.ChatMessageResponse{
		ID:        message.ID,
		Sender:    string(message.Sender),
		Text:      message.Text,
		Timestamp: message.Timestamp,
	}
}

// ChatMessagesToResponses converts a slice of ChatMessage entities to DTOs
func ChatMessagesToResponses(messages []entity.ChatMessage) []dto.ChatMessageResponse {
	responses := make([]dto.ChatMessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = *ChatMessageToResponse(&message)
	}
	return responses
}
