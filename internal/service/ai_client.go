package service

import (
	"context"

	"propertyfinder/internal/model"
)

// FilterOracle turns a natural language query into raw, unvalidated filter
// values. Its output is never trusted: callers run it through
// FilterRules.SanitizeOraclePatch.
type FilterOracle interface {
	// ParseFiltersWithAI parses the query in one request
	ParseFiltersWithAI(ctx context.Context, query string) (*model.AIFilterResponse, error)

	// ParseFiltersWithAIStream parses the query with streaming.
	// The callback receives (thinkingContent, regularContent) for each chunk.
	ParseFiltersWithAIStream(ctx context.Context, query string, callback func(thinking, content string) error) (*model.AIFilterResponse, error)

	// IsEnabled returns whether the oracle is configured and ready
	IsEnabled() bool
}

// StreamChunk represents a generic streaming response chunk
type StreamChunk struct {
	// Regular content (always present in streaming)
	Content string

	// Thinking/reasoning content (provider-specific, e.g., DeepSeek)
	ThinkingContent string

	Role string

	// Whether this is the final chunk
	Done bool
}

// Ensure OpenAIClient implements FilterOracle
var _ FilterOracle = (*OpenAIClient)(nil)
