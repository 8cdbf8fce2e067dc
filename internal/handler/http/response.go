package http

import (
	"net/http"

	"github.com/MKhiriev/go-admin-dashboard/internal/app"
	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/internal/utils"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

// writeOK answers 200 with data encoded as JSON.
func writeOK(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeOK").Msg("error writing response")
	}
}

// writePlain answers status with a plain-text body.
func writePlain(w http.ResponseWriter, r *http.Request, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writePlain").Msg("error writing response")
	}
}

// writeMessage answers status with a {"message": ...} body.
func writeMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Message: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeMessage").Msg("error writing response")
	}
}

// writeInternalError answers 500 with the generic message and the reason.
func writeInternalError(w http.ResponseWriter, r *http.Request, reason string) {
	body := models.ErrorResponse{Message: app.MsgSomethingWentWrong, Error: reason}
	if _, err := utils.WriteJSON(w, body, http.StatusInternalServerError); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeInternalError").Msg("error writing response")
	}
}

// writeError maps err to a status code and answers with a JSON error body.
// Unexpected errors are logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("request failed")
		writeInternalError(w, r, err.Error())
		return
	}

	writeMessage(w, r, status, err.Error())
}
