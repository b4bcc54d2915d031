package service

import (
	"context"
	"strings"
	"time"

	"ai-chatbot-be/internal/constant"
	"ai-chatbot-be/internal/pkg/logger"
	"ai-chatbot-be/pkg/llm"
)

type ICompletionGateway interface {
	// Complete produces a bot reply for the user message, optionally
	// grounded on document context. It never fails: provider errors
	// degrade to a canned reply so the conversation can still be stored.
	Complete(ctx context.Context, message, documentContext string) (reply string, degraded bool)
}

type completionGateway struct {
	provider    llm.LLMProvider
	timeout     time.Duration
	temperature float64
	maxTokens   int
	log         logger.ILogger
}

func NewCompletionGateway(provider llm.LLMProvider, timeout time.Duration, temperature float64, maxTokens int, log logger.ILogger) ICompletionGateway {
	return &completionGateway{
		provider:    provider,
		timeout:     timeout,
		temperature: temperature,
		maxTokens:   maxTokens,
		log:         log,
	}
}

func (g *completionGateway) Complete(ctx context.Context, message, documentContext string) (string, bool) {
	prompt := message
	if documentContext != "" {
		prompt = constant.DocumentPromptPrefix + documentContext + constant.DocumentPromptInfix + message
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	opts := []llm.Option{llm.WithTemperature(g.temperature)}
	if g.maxTokens > 0 {
		opts = append(opts, llm.WithMaxTokens(g.maxTokens))
	}

	reply, err := g.provider.Generate(ctx, prompt, opts...)
	if err != nil {
		g.log.Warn("completion", "model call failed, serving degraded response", map[string]interface{}{
			"error": err.Error(),
		})
		return constant.DegradedResponse, true
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		g.log.Warn("completion", "model returned empty completion", nil)
		return constant.EmptyCompletionReply, true
	}

	return reply, false
}
