// Package binding fills ${...} placeholders in message templates.
package binding

import (
	"fmt"
	"strings"
)

const (
	openMark  = "${"
	closeMark = "}"
)

// Interpolate replaces every ${key} or ${group.key} in text with the matching
// value from data. Placeholders that cannot be resolved, and an unterminated
// "${", are copied through unchanged.
func Interpolate(text string, data map[string]any) string {
	var b strings.Builder
	rest := text
	for {
		before, after, found := strings.Cut(rest, openMark)
		b.WriteString(before)
		if !found {
			return b.String()
		}
		key, tail, closed := strings.Cut(after, closeMark)
		if !closed {
			b.WriteString(openMark)
			b.WriteString(after)
			return b.String()
		}
		if val, ok := lookup(data, strings.TrimSpace(key)); ok {
			fmt.Fprint(&b, val)
		} else {
			b.WriteString(openMark + key + closeMark)
		}
		rest = tail
	}
}

// lookup walks dotted keys through nested maps.
func lookup(data map[string]any, key string) (any, bool) {
	if key == "" {
		return nil, false
	}
	scope := data
	for {
		head, tail, nested := strings.Cut(key, ".")
		val, ok := scope[head]
		if !ok {
			return nil, false
		}
		if !nested {
			return val, true
		}
		if scope, ok = val.(map[string]any); !ok {
			return nil, false
		}
		key = tail
	}
}
