// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

const internalErrorMessage = "Internal server error"

type MessageResponse struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	//nolint:errcheck // best-effort response
	_ = json.NewEncoder(w).Encode(data)
}

func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, MessageResponse{Message: message})
}

func BadRequest(w http.ResponseWriter, message string) {
	Message(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Message(w, http.StatusNotFound, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	Message(w, http.StatusForbidden, message)
}

// InternalServerError logs err and answers with a generic message; the
// underlying error never reaches the client.
func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("request failed", "error", err)
	Message(w, http.StatusInternalServerError, internalErrorMessage)
}

func JSONError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			slog.Error("request failed", "error", appErr)
		}
		Message(w, appErr.Status, appErr.Message)
		return
	}
	InternalServerError(w, err)
}
