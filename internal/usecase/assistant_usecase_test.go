package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"go-clinic-directory/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider returns a canned reply or error and records prompts.
type stubProvider struct {
	mu      sync.Mutex
	reply   string
	err     error
	calls   int
	prompts []string
}

func (p *stubProvider) GetHealthAdvice(_ context.Context, prompt string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.prompts = append(p.prompts, prompt)
	return p.reply, p.err
}

// blockingProvider parks the first call until released, so a second send
// can be attempted while one is outstanding.
type blockingProvider struct {
	started chan struct{}
	release chan struct{}
}

func (p *blockingProvider) GetHealthAdvice(_ context.Context, _ string) (string, error) {
	close(p.started)
	<-p.release
	return "here is some advice", nil
}

func testAssistantConfig() config.AssistantConfig {
	return config.AssistantConfig{
		Timeout:             5 * time.Second,
		Greeting:            "Hello! I am your Sylhet Clinic Assistant. How can I help you today?",
		UnconfiguredMessage: "API Key not configured. Please contact support.",
		FailureMessage:      "I encountered an error while trying to help. Please try again later.",
		EmptyReplyMessage:   "I'm sorry, I couldn't process that request.",
	}
}

func newTestAssistantUsecase(t *testing.T, provider *stubProvider) AssistantUsecase {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)
	if provider == nil {
		return NewAssistantUsecase(log, nil, testAssistantConfig())
	}
	return NewAssistantUsecase(log, provider, testAssistantConfig())
}

func TestTranscript_StartsWithGreeting(t *testing.T) {
	u := newTestAssistantUsecase(t, &stubProvider{reply: "advice"})

	transcript, err := u.Transcript(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, transcript.Total)
	assert.Equal(t, "ai", transcript.Messages[0].Sender)
	assert.Equal(t, testAssistantConfig().Greeting, transcript.Messages[0].Text)
}

func TestSendMessage_AppendsUserThenAI(t *testing.T) {
	provider := &stubProvider{reply: "Drink plenty of water."}
	u := newTestAssistantUsecase(t, provider)

	exchange, err := u.SendMessage(context.Background(), "I have a headache")
	require.NoError(t, err)
	require.Len(t, exchange.Messages, 2)
	assert.Equal(t, "user", exchange.Messages[0].Sender)
	assert.Equal(t, "I have a headache", exchange.Messages[0].Text)
	assert.Equal(t, "ai", exchange.Messages[1].Sender)
	assert.Equal(t, "Drink plenty of water.", exchange.Messages[1].Text)

	transcript, err := u.Transcript(context.Background())
	require.NoError(t, err)
	// greeting + user + ai
	assert.Equal(t, 3, transcript.Total)
	assert.Equal(t, 1, provider.calls)
}

func TestSendMessage_WhitespaceIsNoOp(t *testing.T) {
	provider := &stubProvider{reply: "advice"}
	u := newTestAssistantUsecase(t, provider)

	exchange, err := u.SendMessage(context.Background(), "   \t\n")
	require.NoError(t, err)
	assert.Empty(t, exchange.Messages)

	transcript, err := u.Transcript(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, transcript.Total)
	assert.Equal(t, 0, provider.calls)
}

func TestSendMessage_UnconfiguredProvider(t *testing.T) {
	u := newTestAssistantUsecase(t, nil)

	exchange, err := u.SendMessage(context.Background(), "I have a cough")
	require.NoError(t, err)
	require.Len(t, exchange.Messages, 2)
	assert.Equal(t, testAssistantConfig().UnconfiguredMessage, exchange.Messages[1].Text)
}

func TestSendMessage_ProviderFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("rate limited")}
	u := newTestAssistantUsecase(t, provider)

	exchange, err := u.SendMessage(context.Background(), "chest pain")
	require.NoError(t, err)
	require.Len(t, exchange.Messages, 2)
	// The raw provider error never reaches the transcript.
	assert.Equal(t, testAssistantConfig().FailureMessage, exchange.Messages[1].Text)
}

func TestSendMessage_BlankProviderReply(t *testing.T) {
	provider := &stubProvider{reply: "   "}
	u := newTestAssistantUsecase(t, provider)

	exchange, err := u.SendMessage(context.Background(), "hello")
	require.NoError(t, err)
	require.Len(t, exchange.Messages, 2)
	assert.Equal(t, testAssistantConfig().EmptyReplyMessage, exchange.Messages[1].Text)
}

func TestSendMessage_RejectsSecondWhileInFlight(t *testing.T) {
	provider := &blockingProvider{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	log := logrus.New()
	log.SetOutput(io.Discard)
	u := NewAssistantUsecase(log, provider, testAssistantConfig())

	done := make(chan error, 1)
	go func() {
		_, err := u.SendMessage(context.Background(), "first question")
		done <- err
	}()

	<-provider.started
	_, err := u.SendMessage(context.Background(), "second question")
	assert.ErrorIs(t, err, ErrRequestInFlight)

	close(provider.release)
	require.NoError(t, <-done)

	// Only the first exchange made it into the transcript.
	transcript, err := u.Transcript(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, transcript.Total)
	assert.Equal(t, "user", transcript.Messages[1].Sender)
	assert.Equal(t, "ai", transcript.Messages[2].Sender)
	assert.Equal(t, "here is some advice", transcript.Messages[2].Text)
}

func TestSendMessage_GuardClearsAfterReply(t *testing.T) {
	provider := &stubProvider{reply: "advice"}
	u := newTestAssistantUsecase(t, provider)

	_, err := u.SendMessage(context.Background(), "first")
	require.NoError(t, err)
	_, err = u.SendMessage(context.Background(), "second")
	require.NoError(t, err)

	transcript, err := u.Transcript(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, transcript.Total)
	assert.Equal(t, 2, provider.calls)
}

func TestSearchHealthInfo(t *testing.T) {
	provider := &stubProvider{reply: "Latest dengue guidance."}
	u := newTestAssistantUsecase(t, provider)

	result, err := u.SearchHealthInfo(context.Background(), "dengue")
	require.NoError(t, err)
	assert.Equal(t, "Latest dengue guidance.", result.Result)
	require.Len(t, provider.prompts, 1)
	assert.Contains(t, provider.prompts[0], "dengue")

	// Searches do not touch the transcript.
	transcript, err := u.Transcript(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, transcript.Total)
}

func TestSearchHealthInfo_Unconfigured(t *testing.T) {
	u := newTestAssistantUsecase(t, nil)

	result, err := u.SearchHealthInfo(context.Background(), "dengue")
	require.NoError(t, err)
	assert.Equal(t, testAssistantConfig().UnconfiguredMessage, result.Result)
}
