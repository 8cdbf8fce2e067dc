package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it to w with statusCode and a
// JSON content type.
//
// If marshaling fails, nothing of data is written: the response becomes a
// plain 500 Internal Server Error and the wrapped error is returned.
//
// It returns the number of body bytes written.
//
// Example usage:
//
//	WriteJSON(w, models.ErrorResponse{Message: "user was not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
