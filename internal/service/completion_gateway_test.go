package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-chatbot-be/internal/constant"
	"ai-chatbot-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

type fakeProvider struct {
	reply       string
	err         error
	lastPrompt  string
	lastOptions llm.Options
}

func (p *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return p.reply, p.err
}

func (p *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	p.lastPrompt = prompt
	p.lastOptions = llm.Options{}
	for _, opt := range options {
		opt(&p.lastOptions)
	}
	return p.reply, p.err
}

func TestCompleteReturnsModelReply(t *testing.T) {
	provider := &fakeProvider{reply: "  The answer is 42.  "}
	gw := NewCompletionGateway(provider, time.Minute, 0.7, 0, nopLogger{})

	reply, degraded := gw.Complete(context.Background(), "What is the answer?", "")
	assert.False(t, degraded)
	assert.Equal(t, "The answer is 42.", reply)
	assert.Equal(t, "What is the answer?", provider.lastPrompt)
}

func TestCompleteBuildsDocumentPrompt(t *testing.T) {
	provider := &fakeProvider{reply: "Jane is an engineer."}
	gw := NewCompletionGateway(provider, time.Minute, 0.7, 0, nopLogger{})

	_, _ = gw.Complete(context.Background(), "Who is Jane?", "name, role\nJane, engineer")
	assert.Equal(t,
		constant.DocumentPromptPrefix+"name, role\nJane, engineer"+constant.DocumentPromptInfix+"Who is Jane?",
		provider.lastPrompt)
}

func TestCompletePassesGenerationSettings(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	gw := NewCompletionGateway(provider, time.Minute, 0.2, 512, nopLogger{})

	_, _ = gw.Complete(context.Background(), "Hello?", "")
	assert.Equal(t, 0.2, provider.lastOptions.Temperature)
	assert.Equal(t, 512, provider.lastOptions.MaxTokens)
}

func TestCompleteOmitsMaxTokensWhenUnset(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	gw := NewCompletionGateway(provider, time.Minute, 0.7, 0, nopLogger{})

	_, _ = gw.Complete(context.Background(), "Hello?", "")
	assert.Equal(t, 0.7, provider.lastOptions.Temperature)
	assert.Zero(t, provider.lastOptions.MaxTokens)
}

func TestCompleteDegradesOnProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	gw := NewCompletionGateway(provider, time.Minute, 0.7, 0, nopLogger{})

	reply, degraded := gw.Complete(context.Background(), "Hello?", "")
	assert.True(t, degraded)
	assert.Equal(t, constant.DegradedResponse, reply)
}

func TestCompleteDegradesOnEmptyReply(t *testing.T) {
	provider := &fakeProvider{reply: "   "}
	gw := NewCompletionGateway(provider, time.Minute, 0.7, 0, nopLogger{})

	reply, degraded := gw.Complete(context.Background(), "Hello?", "")
	assert.True(t, degraded)
	assert.Equal(t, constant.EmptyCompletionReply, reply)
}
