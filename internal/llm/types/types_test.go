package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, KindRateLimited, ClassifyStatus(429))
	assert.Equal(t, KindAuthFailed, ClassifyStatus(401))
	assert.Equal(t, KindAuthFailed, ClassifyStatus(403))
	assert.Equal(t, KindOther, ClassifyStatus(500))
	assert.Equal(t, KindOther, ClassifyStatus(0))
}

func TestClassifyMessage(t *testing.T) {
	tests := []struct {
		msg  string
		want ErrorKind
	}{
		{"You exceeded your current quota", KindRateLimited},
		{"error code: insufficient_quota", KindRateLimited},
		{"google.rpc.QuotaFailure", KindRateLimited},
		{"Incorrect API key provided", KindAuthFailed},
		{"invalid_api_key", KindAuthFailed},
		{"Authentication failed", KindAuthFailed},
		{"API key quota exhausted", KindRateLimited},
		{"connection reset by peer", KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMessage(tt.msg))
		})
	}
}

func TestNewProviderErrorStatusWins(t *testing.T) {
	err := NewProviderError("openai", 401, errors.New("quota exceeded"))
	assert.Equal(t, KindAuthFailed, err.Kind)

	err = NewProviderError("openai", 500, errors.New("rate limit reached"))
	assert.Equal(t, KindRateLimited, err.Kind)
}

func TestKindOfWrapped(t *testing.T) {
	pe := NewProviderError("claude", 429, errors.New("slow down"))
	wrapped := fmt.Errorf("generation: %w", pe)

	assert.Equal(t, KindRateLimited, KindOf(wrapped))
	assert.ErrorIs(t, wrapped, pe.Err)
	assert.Equal(t, KindOther, KindOf(nil))
}

func TestKindOfIgnoresPlainErrorText(t *testing.T) {
	assert.Equal(t, KindOther, KindOf(errors.New("missing API key")))
	assert.Equal(t, KindOther, KindOf(fmt.Errorf("upstream: %w", errors.New("429 quota exceeded"))))
}
