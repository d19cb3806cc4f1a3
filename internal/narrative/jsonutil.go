package narrative

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fenceOpen  = regexp.MustCompile("^```(?:json)?\\s*")
	fenceClose = regexp.MustCompile("\\s*```$")
)

func stripFences(text string) string {
	text = fenceOpen.ReplaceAllString(strings.TrimSpace(text), "")
	text = fenceClose.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// firstJSONObject finds the first balanced {...} block in text. Used when
// the model wraps its JSON in preamble prose.
func firstJSONObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// ParseJSONObject recovers a JSON object from raw model output: strict
// parse on the fence-stripped text first, then the first balanced object.
func ParseJSONObject(raw string) (json.RawMessage, error) {
	cleaned := stripFences(raw)

	if isJSONObject(cleaned) {
		return json.RawMessage(cleaned), nil
	}

	if fragment := firstJSONObject(cleaned); fragment != "" && isJSONObject(fragment) {
		return json.RawMessage(fragment), nil
	}

	return nil, NewProviderError(CodeParse, "AI returned a response that could not be parsed", nil)
}

func isJSONObject(text string) bool {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") {
		return false
	}
	var probe map[string]json.RawMessage
	return json.Unmarshal([]byte(trimmed), &probe) == nil
}
