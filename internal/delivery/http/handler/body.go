package handler

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v3"
)

// requestFields is a JSON object body decoded one field at a time. A field
// that is absent or has the wrong type reads as its zero value without
// affecting the other fields.
type requestFields struct {
	raw    map[string]json.RawMessage
	decode func(data []byte, v any) error
}

// readFields parses the body as a JSON object regardless of Content-Type.
// An empty body, malformed JSON or a non-object yields no fields.
func readFields(c fiber.Ctx) requestFields {
	f := requestFields{decode: c.App().Config().JSONDecoder}
	if f.decode == nil {
		f.decode = json.Unmarshal
	}

	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return f
	}
	if err := f.decode(body, &f.raw); err != nil {
		f.raw = nil
	}
	return f
}

func (f requestFields) String(key string) string {
	var s string
	if !f.into(key, &s) {
		return ""
	}
	return s
}

func (f requestFields) Float(key string) float64 {
	var n float64
	if !f.into(key, &n) {
		return 0
	}
	return n
}

// Strings reads a list of strings. Elements that are not strings are dropped.
func (f requestFields) Strings(key string) []string {
	var items []any
	if !f.into(key, &items) {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Objects reads a list of JSON objects. Elements that are not objects are dropped.
func (f requestFields) Objects(key string) []map[string]any {
	var items []any
	if !f.into(key, &items) {
		return []map[string]any{}
	}
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func (f requestFields) into(key string, v any) bool {
	raw, ok := f.raw[key]
	if !ok || len(raw) == 0 {
		return false
	}
	return f.decode(raw, v) == nil
}
