package ai

import "context"

// Message roles, mirroring the OpenAI chat convention.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of a conversation sent to a text generator.
type Message struct {
	Role    string
	Content string
}

// FallbackMarker prefixes every reply produced by the deterministic local
// generator, so callers and tests can tell degraded output apart.
const FallbackMarker = "(demo sin LLM)"

// TextGenerator produces a coach reply from a conversation.
// Implementations must be safe for concurrent use.
type TextGenerator interface {
	// Generate returns the reply text for the conversation. Implementations
	// backed by a remote model may fail; the deterministic local
	// implementation never does.
	Generate(ctx context.Context, messages []Message) (string, error)
}
