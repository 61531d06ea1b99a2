package service

import (
	"encoding/json"
	"strings"
)

const nvidiaAPIBase = "https://integrate.api.nvidia.com/v1"

// StreamChunkParser is the interface for provider-specific chunk parsing
type StreamChunkParser interface {
	ParseChunk(data []byte) (*StreamChunk, error)
}

// streamPayload is the OpenAI chat.completion.chunk shape. NVIDIA hosted
// reasoning models add reasoning_content to the delta.
type streamPayload struct {
	Choices []struct {
		Delta struct {
			Role             string  `json:"role,omitempty"`
			Content          string  `json:"content,omitempty"`
			ReasoningContent *string `json:"reasoning_content,omitempty"`
		} `json:"delta"`
		FinishReason *string `json:"finish_reason,omitempty"`
	} `json:"choices"`
}

func decodeStreamPayload(data []byte, withReasoning bool) (*StreamChunk, error) {
	var raw streamPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	chunk := &StreamChunk{}
	if len(raw.Choices) == 0 {
		return chunk, nil
	}

	choice := raw.Choices[0]
	chunk.Role = choice.Delta.Role
	chunk.Content = choice.Delta.Content
	if withReasoning && choice.Delta.ReasoningContent != nil {
		chunk.ThinkingContent = *choice.Delta.ReasoningContent
	}
	chunk.Done = choice.FinishReason != nil && *choice.FinishReason != ""
	return chunk, nil
}

// OpenAIStreamChunkParser parses standard OpenAI-format streaming chunks
type OpenAIStreamChunkParser struct{}

// ParseChunk converts a standard OpenAI chunk to a StreamChunk
func (p *OpenAIStreamChunkParser) ParseChunk(data []byte) (*StreamChunk, error) {
	return decodeStreamPayload(data, false)
}

// NVIDIAStreamChunkParser also extracts the reasoning stream
type NVIDIAStreamChunkParser struct{}

// ParseChunk converts an NVIDIA/DeepSeek chunk to a StreamChunk
func (p *NVIDIAStreamChunkParser) ParseChunk(data []byte) (*StreamChunk, error) {
	return decodeStreamPayload(data, true)
}

// IsNVIDIAProvider checks if the base URL is NVIDIA API
func IsNVIDIAProvider(baseURL string) bool {
	return strings.TrimRight(baseURL, "/") == nvidiaAPIBase
}

// IsOpenAIProvider checks if the base URL is official OpenAI API
func IsOpenAIProvider(baseURL string) bool {
	return strings.Contains(baseURL, "api.openai.com")
}

// chunkParserFor picks the chunk parser for an API base URL.
// Unknown providers get the standard OpenAI format.
func chunkParserFor(baseURL string) StreamChunkParser {
	if IsNVIDIAProvider(baseURL) {
		return &NVIDIAStreamChunkParser{}
	}
	return &OpenAIStreamChunkParser{}
}
