// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"io"
	"time"
)

// JSONResponse wraps the output of every --json command so scripts can
// branch on a single success field.
type JSONResponse struct {
	Success   bool    `json:"success"`
	Command   string  `json:"command,omitempty"`
	Data      any     `json:"data"`
	Error     *string `json:"error"`
	Timestamp string  `json:"timestamp"`
}

// NewJSONResponse wraps data returned by command.
func NewJSONResponse(command string, data any) *JSONResponse {
	return &JSONResponse{Success: true, Command: command, Data: data, Timestamp: timestamp()}
}

// NewJSONErrorResponse wraps err with Success false.
func NewJSONErrorResponse(command string, err error) *JSONResponse {
	msg := err.Error()
	return &JSONResponse{Command: command, Error: &msg, Timestamp: timestamp()}
}

// Write encodes the response to w, indented, with a trailing newline.
func (r *JSONResponse) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
