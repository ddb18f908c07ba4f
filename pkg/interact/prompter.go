package interact

import (
	"context"
	"io"
	"strings"
	"sync"
)

// MockPrompter replays scripted answers and records everything shown.
type MockPrompter struct {
	mu      sync.Mutex
	answers []string
	lines   []string
	prompts []string
}

// NewMockPrompter creates a prompter that answers with the given lines in order.
func NewMockPrompter(answers ...string) *MockPrompter {
	return &MockPrompter{answers: answers}
}

func (m *MockPrompter) Say(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, msg)
}

// Ask returns the next scripted answer, or io.EOF once the script runs out.
func (m *MockPrompter) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	if len(m.answers) == 0 {
		return "", io.EOF
	}
	answer := m.answers[0]
	m.answers = m.answers[1:]
	return answer, nil
}

// Lines returns a copy of everything said so far.
func (m *MockPrompter) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}

// Output joins everything said so far with newlines.
func (m *MockPrompter) Output() string {
	return strings.Join(m.Lines(), "\n")
}

// Prompts returns a copy of every prompt asked.
func (m *MockPrompter) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// Remaining reports how many scripted answers are left.
func (m *MockPrompter) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.answers)
}
