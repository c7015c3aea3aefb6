package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/gadulu-gruhalu/archive/internal/domain"
	"github.com/gadulu-gruhalu/archive/internal/handler/gen"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "place not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return errorBody("not_found", message)
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return errorBody("validation_error", unwrapMessage(err))
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) gen.ErrorResponse {
	return errorBody("validation_error", message)
}

func conflictBody(message string) gen.ErrorResponse {
	return errorBody("conflict", message)
}

func unauthorizedBody(message string) gen.ErrorResponse {
	return errorBody("unauthorized", message)
}

// externalBody reports a failed external collaborator. The cause stays in
// the logs; clients only learn which capability failed.
func externalBody(message string) gen.ErrorResponse {
	return errorBody("external_error", message)
}

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.PlaceService.Submit: validation error: missing required fields: name" → "missing required fields: name"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range []error{domain.ErrValidation, domain.ErrNotFound, domain.ErrConflict, domain.ErrUnauthorized} {
		marker := sentinel.Error() + ": "
		if i := strings.LastIndex(msg, marker); i >= 0 && len(msg) > i+len(marker) {
			return msg[i+len(marker):]
		}
	}
	return msg
}

// StrictOptions returns the error handlers for the strict server.
// Undecodable bodies become 400 envelopes, or 413 when the body hit the
// size limit. Errors returned by a handler are logged with the request id
// and become an opaque 500 envelope.
func StrictOptions(log *slog.Logger) gen.StrictHTTPServerOptions {
	return gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, errorBody("request_too_large", "request body too large"))
				return
			}
			writeError(w, http.StatusBadRequest, errorBody("bad_request", err.Error()))
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			body := errorBody("internal_error", "internal server error")
			if errors.Is(err, domain.ErrPersistence) {
				body = errorBody("persistence_error", "the record could not be saved")
			}
			log.ErrorContext(r.Context(), "request failed",
				"request_id", chimiddleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"error", err,
			)
			writeError(w, http.StatusInternalServerError, body)
		},
	}
}

// ParamErrorHandler renders query/path parameter binding failures
// (e.g. ?limit=abc) as 400 envelopes.
func ParamErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, errorBody("bad_request", err.Error()))
}

func writeError(w http.ResponseWriter, status int, body gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
