package models

import "encoding/json"

// Envelope is the response convention shared by every Setter API endpoint:
// {"success": bool, "data": ..., "message": "..."}.
type Envelope struct {
	// Success is a pointer because some endpoints omit the flag on success.
	Success *bool           `json:"success,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Failed reports whether the body explicitly declares success:false.
func (e Envelope) Failed() bool {
	return e.Success != nil && !*e.Success
}

// BotPauseRequest is the body of PUT /users/{id}/bot.
type BotPauseRequest struct {
	IsPaused bool `json:"isPaused"`
}
