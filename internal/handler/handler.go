package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"shopfront/internal/model"

	"github.com/rs/zerolog"
)

// messageResponse is the generic error/confirmation body.
type messageResponse struct {
	Message string `json:"message"`
}

// validationResponse carries the aggregated field errors of a rejected
// payload.
type validationResponse struct {
	Message string             `json:"message"`
	Errors  []model.FieldError `json:"errors"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent, nothing left to do.
		return
	}
}

// writeMessage writes a `{message}` body with the given status code.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// writeMethodNotAllowed writes a 405 declaring the allowed methods.
func writeMethodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeMessage(w, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s Not Allowed", r.Method))
}

// decodeJSON decodes a request body into v. Wrong-typed fields come
// back as a *model.ValidationError naming the offending field so they
// reach the client as 400s; anything else (syntax errors, truncated
// bodies) is an ordinary error.
func decodeJSON(body io.Reader, v interface{}) error {
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			verr := &model.ValidationError{}
			field := typeErr.Field
			if field == "" {
				field = "body"
			}
			verr.Add(field, fmt.Sprintf("must be of type %s", typeErr.Type))
			return verr
		}
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// respondError maps a service error to its HTTP representation:
// validation failures to 400 with the field list, not-found to 404,
// everything else to a generic non-leaking 500. validationMessage is
// the resource-specific 400 headline.
func respondError(w http.ResponseWriter, err error, validationMessage string, logger zerolog.Logger) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		logger.Warn().Err(err).Msg("request rejected")
		writeJSON(w, http.StatusBadRequest, validationResponse{
			Message: validationMessage,
			Errors:  verr.Fields,
		})
		return
	}

	if errors.Is(err, model.ErrProductNotFound) {
		writeMessage(w, http.StatusNotFound, model.ErrProductNotFound.Message)
		return
	}

	logger.Error().Err(err).Msg("internal error")
	writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
}
