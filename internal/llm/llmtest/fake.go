// Package llmtest provides a scripted llm.Provider for tests.
package llmtest

import (
	"context"
	"sync"

	"resume-composer/internal/llm/types"
)

// Call records one GenerateResume invocation
type Call struct {
	SystemPrompt string
	UserPrompt   string
}

// Response is one scripted outcome
type Response struct {
	Text string
	Err  error
}

// FakeProvider replays scripted responses in order. Once the script is exhausted the
// last response repeats.
type FakeProvider struct {
	Name      string
	HealthErr error

	mu        sync.Mutex
	responses []Response
	calls     []Call
}

// NewFakeProvider creates a fake that answers with the given responses
func NewFakeProvider(responses ...Response) *FakeProvider {
	return &FakeProvider{Name: "fake", responses: responses}
}

// Succeed returns a fake that always answers with text
func Succeed(text string) *FakeProvider {
	return NewFakeProvider(Response{Text: text})
}

// Fail returns a fake that always fails with a provider error of the given kind
func Fail(kind types.ErrorKind, err error) *FakeProvider {
	return NewFakeProvider(Response{Err: &types.ProviderError{Provider: "fake", Kind: kind, Err: err}})
}

// GenerateResume records the call and returns the next scripted response
func (f *FakeProvider) GenerateResume(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{SystemPrompt: systemPrompt, UserPrompt: userPrompt})
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(f.responses) == 0 {
		return "", nil
	}

	idx := len(f.calls) - 1
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	r := f.responses[idx]
	return r.Text, r.Err
}

// IsHealthy returns HealthErr
func (f *FakeProvider) IsHealthy(ctx context.Context) error {
	return f.HealthErr
}

// GetProviderName returns Name
func (f *FakeProvider) GetProviderName() string {
	return f.Name
}

// Calls returns a copy of the recorded invocations
func (f *FakeProvider) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}
