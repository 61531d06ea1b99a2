package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"propertyfinder/internal/model"
	"propertyfinder/internal/utils"
)

// ErrOracleDisabled is returned when no AI provider is configured
var ErrOracleDisabled = errors.New("AI filter oracle is not enabled")

// IntentParser turns a natural language query into a validated filter patch
type IntentParser struct {
	oracle FilterOracle
	rules  FilterRules
}

// NewIntentParser creates a new intent parser. oracle may be nil.
func NewIntentParser(oracle FilterOracle, rules FilterRules) *IntentParser {
	return &IntentParser{
		oracle: oracle,
		rules:  rules,
	}
}

// Enabled reports whether queries will reach the oracle
func (p *IntentParser) Enabled() bool {
	return p.oracle != nil && p.oracle.IsEnabled()
}

// Translate parses query with the oracle. An empty query yields an empty
// patch without calling it. Any oracle failure is returned so the caller
// can fall back to substring search.
func (p *IntentParser) Translate(ctx context.Context, query string) (*model.IntentResult, error) {
	return p.translate(ctx, query, func(q string) (*model.AIFilterResponse, error) {
		return p.oracle.ParseFiltersWithAI(ctx, q)
	})
}

// TranslateStream is Translate with partial oracle output relayed to callback
func (p *IntentParser) TranslateStream(ctx context.Context, query string, callback func(thinking, content string) error) (*model.IntentResult, error) {
	return p.translate(ctx, query, func(q string) (*model.AIFilterResponse, error) {
		return p.oracle.ParseFiltersWithAIStream(ctx, q, callback)
	})
}

func (p *IntentParser) translate(ctx context.Context, query string, call func(query string) (*model.AIFilterResponse, error)) (*model.IntentResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &model.IntentResult{Source: model.IntentSourceEmpty}, nil
	}

	if !p.Enabled() {
		log.Printf("⚠️  AI search requested but OPENAI_API_KEY is not set")
		return nil, ErrOracleDisabled
	}

	raw, err := call(query)
	if err != nil {
		return nil, fmt.Errorf("oracle parsing error: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = &model.AIFilterResponse{}
	}

	patch, dropped := p.rules.SanitizeOraclePatch(*raw)
	if len(dropped) > 0 {
		log.Printf("⚠️  Dropped out-of-vocabulary oracle values for %q: %v", query, dropped)
	}
	utils.Debugf("🎯 Intent for %q: %+v", query, patch)

	return &model.IntentResult{
		Query:   query,
		Patch:   patch,
		Dropped: dropped,
		Source:  model.IntentSourceAI,
	}, nil
}
