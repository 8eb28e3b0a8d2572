package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go-clinic-directory/config"
	"go-clinic-directory/internal/converter"
	"go-clinic-directory/internal/delivery/dto"
	"go-clinic-directory/internal/domain/entity"
	"go-clinic-directory/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrRequestInFlight is returned when a message is sent while the provider
// is still answering the previous one. The transcript admits at most one
// outstanding request.
var ErrRequestInFlight = errors.New("an assistant request is already in flight")

type AssistantUsecase interface {
	SendMessage(ctx context.Context, text string) (*dto.ChatExchangeResponse, error)
	Transcript(ctx context.Context) (*dto.ChatTranscriptResponse, error)
	SearchHealthInfo(ctx context.Context, query string) (*dto.HealthSearchResponse, error)
}

// assistantUsecase owns the session transcript. Every user message is
// followed by exactly one ai message before the next user message is
// accepted; provider faults never leak past this component.
type assistantUsecase struct {
	log      *logrus.Logger
	provider service.AdviceProvider // nil when no credential is configured
	cfg      config.AssistantConfig

	mu         sync.Mutex
	transcript []entity.ChatMessage
	awaiting   bool
}

func NewAssistantUsecase(log *logrus.Logger, provider service.AdviceProvider, cfg config.AssistantConfig) AssistantUsecase {
	u := &assistantUsecase{
		log:      log,
		provider: provider,
		cfg:      cfg,
	}
	u.transcript = append(u.transcript, entity.ChatMessage{
		ID:        uuid.New(),
		Sender:    entity.ChatSenderAI,
		Text:      cfg.Greeting,
		Timestamp: time.Now(),
	})
	return u
}

// SendMessage appends the user's message, requests advice from the
// provider and appends exactly one ai reply. Whitespace-only input is a
// no-op. A send while another is outstanding fails with
// ErrRequestInFlight.
func (u *assistantUsecase) SendMessage(ctx context.Context, text string) (*dto.ChatExchangeResponse, error) {
	if strings.TrimSpace(text) == "" {
		return &dto.ChatExchangeResponse{Messages: []dto.ChatMessageResponse{}}, nil
	}

	u.mu.Lock()
	if u.awaiting {
		u.mu.Unlock()
		return nil, ErrRequestInFlight
	}
	userMessage := entity.ChatMessage{
		ID:        uuid.New(),
		Sender:    entity.ChatSenderUser,
		Text:      text,
		Timestamp: time.Now(),
	}
	u.transcript = append(u.transcript, userMessage)
	u.awaiting = true
	u.mu.Unlock()

	reply := u.requestAdvice(ctx, text)

	u.mu.Lock()
	aiMessage := entity.ChatMessage{
		ID:        uuid.New(),
		Sender:    entity.ChatSenderAI,
		Text:      reply,
		Timestamp: time.Now(),
	}
	u.transcript = append(u.transcript, aiMessage)
	u.awaiting = false
	u.mu.Unlock()

	return &dto.ChatExchangeResponse{
		Messages: converter.ChatMessagesToResponses([]entity.ChatMessage{userMessage, aiMessage}),
	}, nil
}

// Transcript returns a snapshot of the session transcript in append order.
func (u *assistantUsecase) Transcript(ctx context.Context) (*dto.ChatTranscriptResponse, error) {
	u.mu.Lock()
	messages := make([]entity.ChatMessage, len(u.transcript))
	copy(messages, u.transcript)
	u.mu.Unlock()

	return &dto.ChatTranscriptResponse{
		Messages: converter.ChatMessagesToResponses(messages),
		Total:    len(messages),
	}, nil
}

// SearchHealthInfo runs a one-shot advice request for the given topic. It
// is independent of the transcript and of the in-flight guard, and
// degrades the same way chat does.
func (u *assistantUsecase) SearchHealthInfo(ctx context.Context, query string) (*dto.HealthSearchResponse, error) {
	prompt := fmt.Sprintf("Search for the latest medical information or doctors regarding: %s", query)
	return &dto.HealthSearchResponse{Result: u.requestAdvice(ctx, prompt)}, nil
}

// requestAdvice resolves a prompt to user-visible text. All provider
// faults are absorbed here: no credential, call failure and blank output
// each map to a fixed configured message.
func (u *assistantUsecase) requestAdvice(ctx context.Context, prompt string) string {
	if u.provider == nil {
		return u.cfg.UnconfiguredMessage
	}

	if u.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.cfg.Timeout)
		defer cancel()
	}

	advice, err := u.provider.GetHealthAdvice(ctx, prompt)
	if err != nil {
		u.log.Warnf("Advice provider call failed: %+v", err)
		return u.cfg.FailureMessage
	}
	if strings.TrimSpace(advice) == "" {
		return u.cfg.EmptyReplyMessage
	}
	return advice
}
