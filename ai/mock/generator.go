package mock

import (
	"context"
	"sync"

	"github.com/atenea/rumbo/ai"
)

// MockGenerator is a test double for ai.TextGenerator.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, replies are served from Replies in order.
	GenerateFunc func(ctx context.Context, messages []ai.Message) (string, error)

	// Replies are returned in order by successive Generate calls when
	// GenerateFunc is nil. Past the end, the last reply repeats.
	Replies []string

	mu        sync.Mutex
	callCount int
	lastInput []ai.Message
}

// NewMockGenerator creates a mock generator with the given scripted replies.
// Note: Returns concrete type to allow test assertions.
func NewMockGenerator(replies ...string) *MockGenerator {
	return &MockGenerator{Replies: replies}
}

// Generate returns the next scripted reply, or delegates to GenerateFunc.
func (m *MockGenerator) Generate(ctx context.Context, messages []ai.Message) (string, error) {
	m.mu.Lock()
	call := m.callCount
	m.callCount++
	m.lastInput = messages
	m.mu.Unlock()

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, messages)
	}

	if len(m.Replies) == 0 {
		return "ok", nil
	}
	if call >= len(m.Replies) {
		call = len(m.Replies) - 1
	}
	return m.Replies[call], nil
}

// CallCount returns the number of times Generate was called.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastInput returns the messages passed to the most recent Generate call.
func (m *MockGenerator) LastInput() []ai.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastInput
}

// Reset clears scripted state and the call count.
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastInput = nil
	m.GenerateFunc = nil
}
