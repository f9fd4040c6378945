// Package parser recovers structured JSON from model output. Responses
// frequently wrap the payload in markdown fences, prepend prose, or contain
// mildly malformed escape sequences, so extraction and sanitization happen
// before any unmarshal attempt.
package parser

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var fenceRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSON pulls the JSON payload out of raw model text. It tries, in
// order: a fenced code block, the outermost object literal, the outermost
// array literal.
func ExtractJSON(text string) (string, error) {
	if m := fenceRegex.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), nil
	}

	if start := strings.Index(text, "{"); start != -1 {
		if end := strings.LastIndex(text, "}"); end > start {
			return text[start : end+1], nil
		}
	}

	if start := strings.Index(text, "["); start != -1 {
		if end := strings.LastIndex(text, "]"); end > start {
			return text[start : end+1], nil
		}
	}

	return "", fmt.Errorf("no JSON found in response")
}

// Sanitize repairs the malformed constructs models commonly emit inside
// string values: invalid escape sequences, raw control characters, and an
// unterminated final string. It walks the text character by character,
// tracking string state, and never touches structure outside strings.
func Sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inString := false
	escapeNext := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if escapeNext {
			// A backslash not followed by a legal escape gets doubled so
			// the pair reads as a literal backslash plus the character.
			if !strings.ContainsRune(`"\/bfnrtu`, rune(c)) {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
			escapeNext = false
			continue
		}

		if c == '\\' && inString {
			b.WriteByte(c)
			escapeNext = true
			continue
		}

		if c == '"' {
			inString = !inString
			b.WriteByte(c)
			continue
		}

		if inString {
			switch c {
			case '\n':
				b.WriteString(`\n`)
			case '\r':
				b.WriteString(`\r`)
			case '\t':
				b.WriteString(`\t`)
			default:
				b.WriteByte(c)
			}
			continue
		}

		b.WriteByte(c)
	}

	// A dangling escape at end of input becomes a literal backslash.
	if escapeNext {
		b.WriteByte('\\')
	}
	if inString {
		b.WriteByte('"')
	}

	return b.String()
}

// Parse extracts JSON from raw model text and unmarshals it into v. If the
// extracted payload fails to unmarshal it is sanitized and retried once.
func Parse(text string, v any) error {
	payload, err := ExtractJSON(text)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(payload), v); err == nil {
		return nil
	}

	repaired := Sanitize(payload)
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return fmt.Errorf("failed to parse JSON after sanitization: %w", err)
	}
	return nil
}
