package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data and writes it with statusCode and an
// application/json content type. If marshaling fails it answers 500 and
// returns the wrapped error.
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// WriteSuccess answers with {"success": true, "data": data}.
func WriteSuccess(w http.ResponseWriter, data any, statusCode int) (int, error) {
	return WriteJSON(w, envelope{Success: true, Data: data}, statusCode)
}

// WriteFailure answers with {"success": false, "message": message}.
func WriteFailure(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, envelope{Success: false, Message: message}, statusCode)
}
