package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/logger"
	"github.com/osse101/FishingBot_Go/internal/metrics"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON encodes payload into a pooled buffer first so an encoding
// failure never leaves a half-written body
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// statusForFailure maps a business failure onto an HTTP status.
// Missing templates are data corruption on our side, hence 500.
func statusForFailure(kind domain.FailureKind) int {
	switch kind {
	case domain.FailureNone:
		return http.StatusOK
	case domain.FailureAlreadyRegistered, domain.FailureAlreadyCheckedInToday:
		return http.StatusConflict
	case domain.FailureNotRegistered, domain.FailureUserNotFound:
		return http.StatusNotFound
	case domain.FailureTitleNotOwned:
		return http.StatusForbidden
	case domain.FailureAccessoryTemplateMissing, domain.FailureTitleTemplateMissing:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// respondResult writes a player operation outcome. Faults become a generic
// 500; results are always written in full, whatever their failure kind.
func respondResult(w http.ResponseWriter, r *http.Request, op string, successStatus int, res domain.Result, payload any, err error) {
	if err != nil {
		logger.FromContext(r.Context()).Error(LogMsgOperationFailed, "operation", op, "error", err)
		metrics.RecordOperation(op, metrics.OutcomeError)
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
		return
	}

	metrics.RecordOperation(op, string(res.Failure))
	status := statusForFailure(res.Failure)
	if res.Success {
		status = successStatus
	}
	respondJSON(w, status, payload)
}

// mapServiceError maps catalog errors onto a status and a safe message
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidItemKind):
		return http.StatusBadRequest, ErrMsgInvalidItemKind
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInput
	case errors.Is(err, domain.ErrInvalidPoolItem):
		return http.StatusBadRequest, ErrMsgInvalidPoolItem
	case errors.Is(err, domain.ErrTemplateNotFound):
		return http.StatusNotFound, ErrMsgTemplateNotFound
	case errors.Is(err, domain.ErrPoolNotFound):
		return http.StatusNotFound, ErrMsgPoolNotFound
	case errors.Is(err, domain.ErrPoolItemNotFound):
		return http.StatusNotFound, ErrMsgPoolItemNotFound
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs faults and writes the mapped error
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, msg := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgOperationFailed, "action", action, "error", err)
	} else {
		log.Warn(LogMsgOperationFailed, "action", action, "error", err)
	}
	respondError(w, status, msg)
}
