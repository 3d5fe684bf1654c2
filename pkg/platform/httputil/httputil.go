// Package httputil translates domain errors into JSON HTTP responses.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "fishbill/pkg/domain-errors"
)

var statusByCode = map[dErrors.Code]int{
	dErrors.CodeBadRequest:            http.StatusBadRequest,
	dErrors.CodeNotFound:              http.StatusNotFound,
	dErrors.CodeMissingField:          http.StatusUnprocessableEntity,
	dErrors.CodeInvalidQuantityOrRate: http.StatusUnprocessableEntity,
	dErrors.CodeInvalidContactFormat:  http.StatusUnprocessableEntity,
	dErrors.CodeInvariantViolation:    http.StatusUnprocessableEntity,
	dErrors.CodeRenderFailure:         http.StatusBadGateway,
	dErrors.CodeInternal:              http.StatusInternalServerError,
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a domain error code to an HTTP status and writes the error
// body. Internal errors omit the description so infrastructure details never
// reach clients; validation errors include the offending field so the form
// can refocus it.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status, ok := statusByCode[code]
	if !ok {
		code = dErrors.CodeInternal
		status = http.StatusInternalServerError
	}

	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal {
		var de *dErrors.Error
		if errors.As(err, &de) {
			body["error_description"] = de.Message
		}
		if field := dErrors.FieldOf(err); field != "" {
			body["field"] = field
		}
	}
	WriteJSON(w, status, body)
}
