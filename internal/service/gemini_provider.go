package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-clinic-directory/config"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrAPIKeyMissing is returned by NewGeminiAdviceProvider when no API key
// is configured. The caller is expected to run the assistant in degraded
// mode instead of failing startup.
var ErrAPIKeyMissing = errors.New("service: gemini api key is not configured")

// healthAssistantInstruction is the fixed system-level context sent
// unchanged and verbatim with every advice request. It is configuration of
// the outbound call, not user-editable.
const healthAssistantInstruction = `You are a professional and friendly AI Health Assistant for the "Sylhet Health Care Clinic" platform.
Your goal is to provide general health advice, explain medical terms, and suggest which specialty of doctor a user might need based on their symptoms (Cardiology, Neurology, Pediatrics, Gynecology, Orthopedics, Medicine, Dermatology, ENT).
ALWAYS state that you are an AI and not a substitute for a real doctor.
Keep responses concise, empathetic, and professional. Use bullet points for readability.`

// GeminiAdviceProvider implements AdviceProvider using Google's Gemini API.
type GeminiAdviceProvider struct {
	client      *genai.Client
	modelID     string
	temperature float32
}

// NewGeminiAdviceProvider creates a new Gemini advice provider. It fails
// with ErrAPIKeyMissing when the key is empty so no network call is ever
// attempted without credentials.
func NewGeminiAdviceProvider(ctx context.Context, cfg config.GeminiConfig) (*GeminiAdviceProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrAPIKeyMissing
	}

	modelID := cfg.Model
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("service: failed to create gemini client: %w", err)
	}

	return &GeminiAdviceProvider{
		client:      client,
		modelID:     modelID,
		temperature: float32(cfg.Temperature),
	}, nil
}

// GetHealthAdvice sends the prompt to Gemini under the fixed system
// instruction and returns the response text.
func (p *GeminiAdviceProvider) GetHealthAdvice(ctx context.Context, prompt string) (string, error) {
	model := p.client.GenerativeModel(p.modelID)
	model.SetTemperature(p.temperature)
	model.SystemInstruction = genai.NewUserContent(genai.Text(healthAssistantInstruction))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("service: gemini completion failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("service: gemini returned no candidates")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("service: gemini returned empty content")
	}

	var responseText strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			responseText.WriteString(string(text))
		}
	}

	text := strings.TrimSpace(responseText.String())
	if text == "" {
		return "", errors.New("service: gemini returned no text parts")
	}

	return text, nil
}

// Close releases resources held by the Gemini client.
func (p *GeminiAdviceProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}
