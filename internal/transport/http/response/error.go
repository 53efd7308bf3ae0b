package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/deptboard/board-service/internal/domain"
	"github.com/deptboard/board-service/internal/logger"
)

// environment is set once at wiring time; see SetEnvironment.
var environment string

// SetEnvironment records the deployment environment ("dev", "prod", ...) so
// WriteError can decide whether field-level details are safe to return.
// Called from bootstrap before the router takes traffic.
func SetEnvironment(env string) {
	environment = env
}

// errorBody is the flat error shape every endpoint emits.
type errorBody struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// StatusOf maps a domain error to its HTTP status. Conflicts map to 400,
// not 409: the existing clients branch on 400 for duplicate signups.
func StatusOf(err error) int {
	var de *domain.Error
	if !errors.As(err, &de) {
		return http.StatusInternalServerError
	}
	switch de.Kind {
	case domain.KindValidation, domain.KindConflict:
		return http.StatusBadRequest
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders a domain error. Internal causes are logged, never sent
// to the client; field-level details only leak outside prod.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)

	var de *domain.Error
	if !errors.As(err, &de) {
		de = domain.ErrInternal(err)
	}

	if status >= 500 {
		logger.WithCtx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		logger.WithCtx(r.Context()).Debug().Err(err).Str("path", r.URL.Path).Msg("request rejected")
	}

	body := errorBody{Error: de.Message, Code: de.Code}
	if environment != "prod" {
		body.Details = de.Meta
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
