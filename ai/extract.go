package ai

import (
	"strings"

	"github.com/tidwall/gjson"
)

func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

func extractBetween(text string, open, close byte, missing error) (string, error) {
	text = stripFences(text)
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start == -1 || end == -1 || end < start {
		return "", missing
	}
	span := text[start : end+1]
	if !gjson.Valid(span) {
		return "", ErrInvalidJSON
	}
	return span, nil
}

// ExtractObject returns the JSON object embedded in a model reply, ignoring Markdown
// code fences and any prose before the first '{' or after the last '}'.
func ExtractObject(text string) (gjson.Result, error) {
	span, err := extractBetween(text, '{', '}', ErrNoJSONObject)
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.Parse(span), nil
}

// ExtractArray is ExtractObject for a top-level JSON array.
func ExtractArray(text string) (gjson.Result, error) {
	span, err := extractBetween(text, '[', ']', ErrNoJSONArray)
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.Parse(span), nil
}

// ExtractStrings reads a JSON array of strings out of a model reply. Non-string
// elements are rendered with their raw JSON text.
func ExtractStrings(text string) ([]string, error) {
	arr, err := ExtractArray(text)
	if err != nil {
		return nil, err
	}
	out := []string{}
	for _, v := range arr.Array() {
		if s := strings.TrimSpace(v.String()); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}
