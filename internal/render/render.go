// Package render serializes engine results either as human-readable text or
// as the versioned semantic JSON envelope.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/xolan/timetrace/internal/apperr"
)

// SchemaVersion is the current semantic JSON envelope version.
const SchemaVersion = 1

// Envelope header keys.
const (
	KeySchemaVersion = "schema_version"
	KeyAction        = "action"
	KeyOutputMode    = "output_mode"
	KeyRawContent    = "raw_content"
	KeyItems         = "items"
)

// Mode selects the serialization.
type Mode string

const (
	ModeText         Mode = "text"
	ModeSemanticJSON Mode = "semantic_json"
)

// ParseMode accepts "text", "semantic_json" and the short alias "json".
// An empty string selects text.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", string(ModeText):
		return ModeText, nil
	case string(ModeSemanticJSON), "json":
		return ModeSemanticJSON, nil
	default:
		return "", apperr.Validationf("unknown output mode %q (expected text or semantic_json)", s)
	}
}

// Renderable is a result that can be shown both ways from the same data.
type Renderable interface {
	// ActionName is the stable lower_snake_case action token.
	ActionName() string
	// Text is the human-oriented block, ending with a footer line.
	Text() string
	// Payload is marshaled and merged into the envelope. Objects contribute
	// their fields; anything else lands under "items".
	Payload() any
}

// Render serializes r in the requested mode.
func Render(mode Mode, r Renderable) (string, error) {
	switch mode {
	case ModeText, "":
		return r.Text(), nil
	case ModeSemanticJSON:
		return JSON(r.ActionName(), r.Payload())
	default:
		return "", apperr.Validationf("unknown output mode %q", mode)
	}
}

// JSON builds the semantic envelope around payload. Keys are emitted in
// sorted order so the same payload always yields the same bytes.
func JSON(action string, payload any) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s payload: %w", action, err)
	}

	fields := make(map[string]json.RawMessage)
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return "", fmt.Errorf("failed to merge %s payload: %w", action, err)
		}
	} else if !bytes.Equal(trimmed, []byte("null")) {
		fields[KeyItems] = trimmed
	}

	return encode(action, fields)
}

// FromContent wraps already-rendered content in the envelope. JSON objects
// are merged like any payload; anything else, including malformed JSON, is
// kept verbatim under raw_content.
func FromContent(action, content string) string {
	fields := make(map[string]json.RawMessage)
	trimmed := bytes.TrimSpace([]byte(content))
	if len(trimmed) == 0 || trimmed[0] != '{' || json.Unmarshal(trimmed, &fields) != nil {
		fields = map[string]json.RawMessage{KeyRawContent: mustMarshal(content)}
	}

	out, err := encode(action, fields)
	if err != nil {
		return content
	}
	return out
}

func encode(action string, fields map[string]json.RawMessage) (string, error) {
	fields[KeySchemaVersion] = mustMarshal(SchemaVersion)
	fields[KeyAction] = mustMarshal(action)
	fields[KeyOutputMode] = mustMarshal(string(ModeSemanticJSON))

	out, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s envelope: %w", action, err)
	}
	return string(out), nil
}

func mustMarshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
