package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	fencedJSONPattern   = regexp.MustCompile("(?s)```json\\s*(.+?)\\s*```")
	fencedPattern       = regexp.MustCompile("(?s)```\\s*(.+?)\\s*```")
	trailingCommaRegexp = regexp.MustCompile(`,\s*([}\]])`)
	bareKeyRegexp       = regexp.MustCompile(`([{,]\s*)(\w+)(\s*:)`)
	controlCharRegexp   = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`)
)

// ParseAIJSON extracts and decodes the JSON object an LLM returned. It accepts
// pure JSON, JSON in markdown fences, JSON surrounded by prose, and a few
// common syntax slips (trailing commas, bare keys, single quotes).
func ParseAIJSON(input string, target interface{}) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("empty input")
	}

	candidates := []string{
		input,
		extractFromMarkdown(input),
		extractJSONFromText(input),
		cleanAndFixJSON(input),
	}
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if err := json.Unmarshal([]byte(candidate), target); err == nil {
			return nil
		}
	}

	return fmt.Errorf("failed to parse JSON from input: %s", truncateString(input, 100))
}

// extractFromMarkdown returns the body of a ```json or ``` fence
func extractFromMarkdown(input string) string {
	if m := fencedJSONPattern.FindStringSubmatch(input); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	if m := fencedPattern.FindStringSubmatch(input); len(m) > 1 {
		content := strings.TrimSpace(m[1])
		if strings.HasPrefix(content, "{") || strings.HasPrefix(content, "[") {
			return content
		}
	}

	return ""
}

// extractJSONFromText finds the first balanced object (or array) in prose
func extractJSONFromText(input string) string {
	if start := strings.Index(input, "{"); start >= 0 {
		if extracted := extractBalancedBraces(input[start:], '{', '}'); extracted != "" {
			return extracted
		}
	}

	if start := strings.Index(input, "["); start >= 0 {
		if extracted := extractBalancedBraces(input[start:], '[', ']'); extracted != "" {
			return extracted
		}
	}

	return ""
}

// extractBalancedBraces returns the prefix of input up to the brace that
// closes the first open brace, ignoring braces inside string literals
func extractBalancedBraces(input string, open, close rune) string {
	depth := 0
	inString := false
	escape := false
	start := -1

	for i, ch := range input {
		switch {
		case escape:
			escape = false
		case ch == '\\':
			escape = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == open:
			if depth == 0 {
				start = i
			}
			depth++
		case ch == close && depth > 0:
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
		}
	}

	return ""
}

// cleanAndFixJSON repairs the syntax slips LLMs make most often
func cleanAndFixJSON(input string) string {
	s := strings.TrimPrefix(strings.TrimSpace(input), "\ufeff")
	if extracted := extractJSONFromText(s); extracted != "" {
		s = extracted
	}
	s = trailingCommaRegexp.ReplaceAllString(s, "$1")
	s = bareKeyRegexp.ReplaceAllString(s, `$1"$2"$3`)
	s = fixSingleQuotes(s)
	return controlCharRegexp.ReplaceAllString(s, "")
}

// fixSingleQuotes turns single-quoted strings into double-quoted ones.
// Apostrophes inside words and inside double-quoted strings are left alone.
func fixSingleQuotes(input string) string {
	var b strings.Builder
	inDouble := false
	inSingle := false
	escape := false
	var prevNonSpace rune

	for _, ch := range input {
		out := ch
		switch {
		case escape:
			escape = false
		case ch == '\\':
			escape = true
		case ch == '"' && inSingle:
			b.WriteString(`\"`)
			continue
		case ch == '"':
			inDouble = !inDouble
		case ch == '\'' && !inDouble:
			if inSingle {
				inSingle = false
				out = '"'
			} else if prevNonSpace == 0 || strings.ContainsRune(":,[{", prevNonSpace) {
				inSingle = true
				out = '"'
			}
		}
		b.WriteRune(out)
		if !unicode.IsSpace(ch) {
			prevNonSpace = ch
		}
	}

	return b.String()
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
