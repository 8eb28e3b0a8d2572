package handler

import (
	"encoding/json"
	"net/http"

	"go-clinic-directory/internal/delivery/dto"
	"go-clinic-directory/internal/usecase"
	"go-clinic-directory/pkg/response"
	"go-clinic-directory/pkg/validator"
)

type AssistantHandler struct {
	assistantUsecase usecase.AssistantUsecase
	validator        *validator.CustomValidator
}

func NewAssistantHandler(assistantUsecase usecase.AssistantUsecase, validator *validator.CustomValidator) *AssistantHandler {
	return &AssistantHandler{
		assistantUsecase: assistantUsecase,
		validator:        validator,
	}
}

func (h *AssistantHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.SendChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	exchange, err := h.assistantUsecase.SendMessage(r.Context(), req.Text)
	if err != nil {
		if err == usecase.ErrRequestInFlight {
			response.Error(w, http.StatusConflict, "Assistant is still answering the previous message", nil)
			return
		}
		response.InternalServerError(w, "Failed to send message")
		return
	}

	response.Success(w, http.StatusOK, "Message processed successfully", exchange)
}

func (h *AssistantHandler) GetTranscript(w http.ResponseWriter, r *http.Request) {
	transcript, err := h.assistantUsecase.Transcript(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get transcript")
		return
	}

	response.Success(w, http.StatusOK, "Transcript retrieved successfully", transcript)
}

func (h *AssistantHandler) SearchHealthInfo(w http.ResponseWriter, r *http.Request) {
	var req dto.HealthSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.assistantUsecase.SearchHealthInfo(r.Context(), req.Query)
	if err != nil {
		response.InternalServerError(w, "Failed to search health information")
		return
	}

	response.Success(w, http.StatusOK, "Search completed successfully", result)
}
