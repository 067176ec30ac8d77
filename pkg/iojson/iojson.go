// Package iojson holds helpers for reading and writing JSON from a command
// line interface.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is the JSON shape written for command failures in JSON mode.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func jsonError(msg string, jsonErr error) string {
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(jsonErr.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// MarshalError renders msg and data as an Error object. If marshaling fails a
// hand built object carrying the marshal error is returned instead.
func MarshalError(msg string, data map[string]any) string {
	bits, err := json.Marshal(Error{Message: msg, Data: data})
	if err != nil {
		return jsonError(msg, err)
	}
	return string(bits)
}

// WriteError writes msg and data as a single JSON line to w.
func WriteError(w io.Writer, msg string, data map[string]any) error {
	_, err := fmt.Fprintln(w, MarshalError(msg, data))
	return err
}

// WriteLine writes obj to w as compact JSON followed by a newline.
func WriteLine(w io.Writer, obj any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(obj); err != nil {
		return fmt.Errorf("encode json line: %w", err)
	}
	return nil
}
