package openai

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/atenea/rumbo/ai"
)

// ErrEmptyCompletion is returned when the model replies with no choices.
var ErrEmptyCompletion = errors.New("model returned no completion choices")

// Generator implements ai.TextGenerator against an OpenAI-compatible chat API.
type Generator struct {
	client      *openai.LLM
	temperature float64
	logger      *slog.Logger
}

// newGenerator is an internal constructor that returns the concrete type.
func newGenerator(config *ai.Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	opts := []openai.Option{
		openai.WithToken(config.APIKey),
		openai.WithModel(config.Model),
	}
	// Local OpenAI-compatible services expose custom endpoints.
	if config.Host != "" {
		opts = append(opts, openai.WithBaseURL(config.Host))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}

	return &Generator{
		client:      client,
		temperature: config.Temperature,
		logger:      slog.Default().With("component", "openai-generator"),
	}, nil
}

// NewGenerator creates a new generator using the provided configuration.
//
// Returns ai.TextGenerator interface to enforce abstraction.
func NewGenerator(config *ai.Config) (ai.TextGenerator, error) {
	return newGenerator(config)
}

// Generate sends the conversation to the chat model and returns the reply.
func (g *Generator) Generate(ctx context.Context, messages []ai.Message) (string, error) {
	g.logger.Debug("generating chat completion", "messages", len(messages))

	content := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		content = append(content, llms.TextParts(messageType(msg.Role), msg.Content))
	}

	resp, err := g.client.GenerateContent(ctx, content, llms.WithTemperature(g.temperature))
	if err != nil {
		g.logger.Error("chat completion failed", "err", err)
		return "", err
	}

	if len(resp.Choices) == 0 {
		g.logger.Warn("model returned no choices")
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Content, nil
}

// messageType maps a conversation role to the langchaingo message type.
func messageType(role string) llms.ChatMessageType {
	switch role {
	case ai.RoleSystem:
		return llms.ChatMessageTypeSystem
	case ai.RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}
