package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/turtacn/BioTriage/pkg/errors"
)

// errorResponse is the error-as-data payload every pipeline failure maps to.
// Clients branch on the presence of the "error" key, not on HTTP status.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps a pipeline error onto the error-as-data contract: the
// response is HTTP 200 with an {"error": ...} body carrying the user-facing
// message.  Only the AppError message is exposed; cause chains stay in logs.
func writeError(w http.ResponseWriter, err error) {
	msg := "Internal server error"
	var appErr *errors.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}
	writeJSON(w, http.StatusOK, errorResponse{Error: msg})
}

// writeBadRequest rejects a malformed request envelope (undecodable JSON,
// missing multipart part) before the pipeline is ever invoked.
func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
