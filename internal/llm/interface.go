package llm

import "resume-composer/internal/llm/types"

// Provider defines the interface for LLM providers
type Provider = types.Provider

// ProviderError is the structured failure every provider returns
type ProviderError = types.ProviderError

type ErrorKind = types.ErrorKind

const (
	KindRateLimited = types.KindRateLimited
	KindAuthFailed  = types.KindAuthFailed
	KindOther       = types.KindOther
)

// KindOf returns the classification of a provider failure
func KindOf(err error) ErrorKind {
	return types.KindOf(err)
}
