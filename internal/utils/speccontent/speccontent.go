// Package speccontent encodes free-form API spec content to and from the
// JSON document form it is persisted in. Plain strings are wrapped as
// {"content": ...} so the stored column always holds a valid JSON document.
package speccontent

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Encode converts arbitrary spec content into a JSON document string.
// Strings are wrapped as {"content": s}, JSON objects and arrays are
// serialized directly, and any other value is stringified and wrapped.
// Encode never fails; if serialization of a structured value errors out,
// an {"error": ..., "content": ...} document is emitted instead.
func Encode(value any) string {
	switch v := value.(type) {
	case string:
		return mustMarshal(map[string]string{"content": v})
	case json.RawMessage:
		if json.Valid(v) {
			return string(v)
		}
		return encodeFailure(fmt.Errorf("invalid raw JSON"), string(v))
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		data, err := json.Marshal(value)
		if err != nil {
			return encodeFailure(err, fmt.Sprint(value))
		}
		return string(data)
	default:
		return mustMarshal(map[string]string{"content": fmt.Sprint(value)})
	}
}

// Decode parses a stored JSON document back into its content value.
// A document that is not valid JSON is returned as the raw string.
// An object whose only key is "content" is unwrapped to that value;
// any other structure is returned as the parsed value.
func Decode(serialized string) any {
	var parsed any
	if err := json.Unmarshal([]byte(serialized), &parsed); err != nil {
		return serialized
	}
	if obj, ok := parsed.(map[string]any); ok && len(obj) == 1 {
		if content, ok := obj["content"]; ok {
			return content
		}
	}
	return parsed
}

// Normalize applies the lenient ingest rule used by the BFF: a string that
// itself parses as JSON is stored as that JSON value, any other input goes
// through Encode unchanged.
func Normalize(value any) string {
	if s, ok := value.(string); ok {
		var parsed any
		if err := json.Unmarshal([]byte(s), &parsed); err == nil {
			return Encode(parsed)
		}
	}
	return Encode(value)
}

func encodeFailure(err error, content string) string {
	return mustMarshal(map[string]string{
		"error":   fmt.Sprintf("Invalid data format: %v", err),
		"content": content,
	})
}

func mustMarshal(v map[string]string) string {
	data, _ := json.Marshal(v)
	return string(data)
}
