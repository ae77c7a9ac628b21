// Package mermaid builds mermaid.live editor links.
//
// A link carries the editor state as JSON, zlib-compressed at level 9 and
// encoded as URL-safe base64 without padding, after the "pako:" marker.
// This is the same encoding the generated mermaid_to_link.js helper uses.
package mermaid

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// EditURLPrefix precedes the encoded state in every link.
const EditURLPrefix = "https://mermaid.live/edit#pako:"

// ErrEmptyCode is returned when there is no diagram source to encode.
var ErrEmptyCode = errors.New("mermaid code is empty")

// State is the editor state serialized into a link. Field order matches the
// helper script's object literal.
type State struct {
	Code          string       `json:"code"`
	Mermaid       MermaidState `json:"mermaid"`
	AutoSync      bool         `json:"autoSync"`
	UpdateDiagram bool         `json:"updateDiagram"`
}

// MermaidState holds renderer options.
type MermaidState struct {
	Theme string `json:"theme"`
}

// NewState returns the default editor state for code.
func NewState(code string) State {
	return State{
		Code:          code,
		Mermaid:       MermaidState{Theme: "default"},
		AutoSync:      true,
		UpdateDiagram: true,
	}
}

// EditURL returns the mermaid.live edit link for code.
func EditURL(code string) (string, error) {
	if code == "" {
		return "", ErrEmptyCode
	}
	token, err := Encode(NewState(code))
	if err != nil {
		return "", err
	}
	return EditURLPrefix + token, nil
}

// Encode serializes st into a pako token. The JSON payload is byte-identical
// to what the helper script compresses, U+2028 and U+2029 included.
func Encode(st State) (string, error) {
	var js bytes.Buffer
	enc := json.NewEncoder(&js)
	enc.SetEscapeHTML(false) // keep "-->" readable, as JSON.stringify does
	if err := enc.Encode(st); err != nil {
		return "", fmt.Errorf("failed to marshal state: %w", err)
	}
	payload := unescapeLineSeparators(bytes.TrimSuffix(js.Bytes(), []byte("\n")))

	var compressed bytes.Buffer
	zw, err := zlib.NewWriterLevel(&compressed, zlib.BestCompression)
	if err != nil {
		return "", fmt.Errorf("failed to create zlib writer: %w", err)
	}
	if _, err := zw.Write(payload); err != nil {
		return "", fmt.Errorf("failed to compress state: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to flush compressed state: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(compressed.Bytes()), nil
}

// Decode reverses Encode. It accepts either a bare token or a full edit link.
func Decode(token string) (State, error) {
	if i := strings.Index(token, "pako:"); i >= 0 {
		token = token[i+len("pako:"):]
	}
	// Tolerate padded input.
	token = strings.TrimRight(token, "=")

	compressed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return State{}, fmt.Errorf("invalid base64 token: %w", err)
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return State{}, fmt.Errorf("invalid zlib stream: %w", err)
	}
	defer zr.Close()

	payload, err := io.ReadAll(zr)
	if err != nil {
		return State{}, fmt.Errorf("failed to inflate state: %w", err)
	}

	var st State
	if err := json.Unmarshal(payload, &st); err != nil {
		return State{}, fmt.Errorf("invalid state JSON: %w", err)
	}
	return st, nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json
// always emits back into raw characters, as JSON.stringify leaves them.
// Every backslash in encoder output starts an escape, so escaped backslashes
// are skipped whole.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		switch string(b[i+1 : min(i+6, len(b))]) {
		case "u2028":
			out = append(out, "\u2028"...)
			i += 5
		case "u2029":
			out = append(out, "\u2029"...)
			i += 5
		default:
			out = append(out, b[i], b[i+1])
			i++
		}
	}
	return out
}
