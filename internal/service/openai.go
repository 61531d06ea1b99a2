package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"propertyfinder/internal/config"
	"propertyfinder/internal/model"
	"propertyfinder/internal/utils"
)

// OpenAIClient handles OpenAI-compatible API interactions
type OpenAIClient struct {
	config      *config.OpenAIConfig
	httpClient  *http.Client
	chunkParser StreamChunkParser
}

// NewOpenAIClient creates a new OpenAI-compatible client with auto-detection of provider
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	parser := chunkParserFor(cfg.APIBase)
	switch parser.(type) {
	case *NVIDIAStreamChunkParser:
		log.Printf("🔧 Detected NVIDIA API provider (supports reasoning/thinking)")
	default:
		log.Printf("🔧 Using standard OpenAI format for: %s", cfg.APIBase)
	}

	return &OpenAIClient{
		config:      cfg,
		chunkParser: parser,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled returns whether the client is configured and ready
func (c *OpenAIClient) IsEnabled() bool {
	return c != nil && c.config.Enabled
}

// ChatCompletionRequest represents a chat completion request
type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	TopP           float64         `json:"top_p,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
	Stream         bool            `json:"stream,omitempty"`
	ExtraBody      map[string]any  `json:"extra_body,omitempty"` // e.g. {"chat_template_kwargs": {"thinking": true}}
}

// ChatMessage represents a single message in the conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat specifies the format of the response
type ResponseFormat struct {
	Type string `json:"type"` // "json_object" or "text"
}

// ChatCompletionResponse represents the API response
type ChatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// StreamCallback is called for each chunk in streaming mode
type StreamCallback func(chunk *StreamChunk) error

// applyDefaults fills unset request parameters from config
func (c *OpenAIClient) applyDefaults(req *ChatCompletionRequest) {
	if req.Model == "" {
		req.Model = c.config.ChatModel
	}
	if req.Temperature == 0 && c.config.ChatTemperature > 0 {
		req.Temperature = c.config.ChatTemperature
	}
	if req.TopP == 0 && c.config.ChatTopP > 0 {
		req.TopP = c.config.ChatTopP
	}
	if req.MaxTokens == 0 && c.config.ChatMaxTokens > 0 {
		req.MaxTokens = c.config.ChatMaxTokens
	}

	if req.ExtraBody == nil && c.config.ChatExtraBody != "" {
		var extraBody map[string]any
		if err := json.Unmarshal([]byte(c.config.ChatExtraBody), &extraBody); err == nil {
			req.ExtraBody = extraBody
			utils.Debugf("✅ ChatExtraBody parsed successfully: %+v", extraBody)
		} else {
			log.Printf("Warning: Failed to parse OPENAI_CHAT_EXTRA_BODY: %v", err)
		}
	}
}

func (c *OpenAIClient) newChatRequest(ctx context.Context, req ChatCompletionRequest) (*http.Request, error) {
	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", strings.TrimRight(c.config.APIBase, "/"))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))
	return httpReq, nil
}

// ChatCompletion performs a chat completion request
func (c *OpenAIClient) ChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	if !c.IsEnabled() {
		return nil, fmt.Errorf("OpenAI API is not enabled (missing API key)")
	}
	c.applyDefaults(&req)

	httpReq, err := c.newChatRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &result, nil
}

// ChatCompletionStream performs a streaming chat completion request
func (c *OpenAIClient) ChatCompletionStream(ctx context.Context, req ChatCompletionRequest, callback StreamCallback) error {
	if !c.IsEnabled() {
		return fmt.Errorf("OpenAI API is not enabled (missing API key)")
	}
	c.applyDefaults(&req)
	req.Stream = true

	httpReq, err := c.newChatRequest(ctx, req)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read stream: %w", err)
		}

		trimmed := bytes.TrimSpace(line)
		if data, ok := bytes.CutPrefix(trimmed, []byte("data:")); ok {
			data = bytes.TrimSpace(data)
			if bytes.Equal(data, []byte("[DONE]")) {
				return nil
			}

			chunk, perr := c.chunkParser.ParseChunk(data)
			if perr != nil {
				log.Printf("Warning: Failed to parse stream chunk: %v", perr)
			} else if cerr := callback(chunk); cerr != nil {
				return fmt.Errorf("callback error: %w", cerr)
			}
		}

		if err == io.EOF {
			return nil
		}
	}
}

// filterSystemPrompt describes the filter schema and the closed vocabularies
func filterSystemPrompt() string {
	var b strings.Builder
	b.WriteString(`You are a property rental search assistant. Parse the following user query for property search and extract the filter criteria.

Extract the following information if present:
- price_min: the minimum price per month (number)
- price_max: the maximum price per month (number)
- types: the property types, each one of: `)
	b.WriteString(quotedList(model.PropertyTypes))
	b.WriteString(`
- amenities: the amenities required, each one of: `)
	b.WriteString(quotedList(model.AvailableAmenities))
	b.WriteString(`
- rating: the minimum star rating, as an integer (e.g., 4 for 4+ stars)

Important rules:
- Respond ONLY with valid JSON
- If a field is not mentioned, omit it
- Use only the listed values for types and amenities
- For prices: "15k" = 15000

Examples:
Query: "PG with food under 10000"
Response: {"types": ["PG"], "amenities": ["Food"], "price_max": 10000}

Query: "apartment with wifi and AC, 4+ stars"
Response: {"types": ["Apartment"], "amenities": ["WiFi", "AC"], "rating": 4}`)
	return b.String()
}

func quotedList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}

func (c *OpenAIClient) filterRequest(query string) ChatCompletionRequest {
	return ChatCompletionRequest{
		Model: c.config.ChatModel,
		Messages: []ChatMessage{
			{Role: "system", Content: filterSystemPrompt()},
			{Role: "user", Content: fmt.Sprintf("Query: %q", query)},
		},
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}
}

// ParseFiltersWithAI asks the model for filter values in one request
func (c *OpenAIClient) ParseFiltersWithAI(ctx context.Context, query string) (*model.AIFilterResponse, error) {
	if !c.IsEnabled() {
		return nil, fmt.Errorf("OpenAI API is not enabled")
	}

	resp, err := c.ChatCompletion(ctx, c.filterRequest(query))
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return nil, fmt.Errorf("AI returned an empty response")
	}

	var result model.AIFilterResponse
	if err := utils.ParseAIJSON(content, &result); err != nil {
		log.Printf("Failed to parse AI response, content: %s", content)
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}
	return &result, nil
}

// ParseFiltersWithAIStream asks the model for filter values, relaying
// partial output to callback while it arrives
func (c *OpenAIClient) ParseFiltersWithAIStream(ctx context.Context, query string, callback func(thinking, content string) error) (*model.AIFilterResponse, error) {
	if !c.IsEnabled() {
		return nil, fmt.Errorf("OpenAI API is not enabled")
	}
	utils.Debugf("🤖 Streaming filter parse, model: %s, base: %s", c.config.ChatModel, c.config.APIBase)

	var fullContent strings.Builder
	chunkCount := 0

	err := c.ChatCompletionStream(ctx, c.filterRequest(query), func(chunk *StreamChunk) error {
		chunkCount++
		if chunk.ThinkingContent != "" {
			if err := callback(chunk.ThinkingContent, ""); err != nil {
				return err
			}
		}
		if chunk.Content != "" {
			fullContent.WriteString(chunk.Content)
			if err := callback("", chunk.Content); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("streaming error: %w", err)
	}

	content := strings.TrimSpace(fullContent.String())
	utils.Debugf("🎉 Streaming completed. chunks=%d content=%s", chunkCount, content)
	if content == "" {
		return nil, fmt.Errorf("AI returned an empty response")
	}

	var result model.AIFilterResponse
	if err := utils.ParseAIJSON(content, &result); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (content: %s)", err, content)
	}
	return &result, nil
}
