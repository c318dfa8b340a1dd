// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/airdefence/internal/database"
	"github.com/tomtom215/airdefence/internal/logging"
	"github.com/tomtom215/airdefence/internal/prediction"
	"github.com/tomtom215/airdefence/internal/validation"
)

// msgModelsNotLoaded is returned while no model bundle is available.
const msgModelsNotLoaded = "Models not loaded. Run the training pipeline first."

// writeError maps err onto a status code and error code. Not-found and
// ambiguity errors already carry a client-facing message; anything
// unrecognized is logged and reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	rw := NewResponseWriter(w, r)

	var (
		ambiguous *database.AmbiguousError
		invalid   *validation.RequestValidationError
		param     *ParamError
	)
	switch {
	case errors.As(err, &ambiguous):
		rw.Conflict(ambiguous.Error(), ambiguous.Matches)
	case errors.Is(err, database.ErrNotFound):
		rw.NotFound(notFoundMessage(err))
	case errors.As(err, &invalid):
		rw.ValidationError(invalid)
	case errors.As(err, &param):
		rw.BadRequest(param.Error())
	case errors.Is(err, prediction.ErrSameCountry):
		rw.BadRequest("Attacker and defender must be different countries")
	case errors.Is(err, prediction.ErrModelsNotLoaded):
		rw.ServiceUnavailable(msgModelsNotLoaded)
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to send.
		logging.CtxWarn(r.Context()).Err(err).Msg("Request canceled")
	default:
		logging.CtxErr(r.Context(), err).Str("path", r.URL.Path).Msg("API error")
		rw.InternalError("An internal error occurred")
	}
}

// notFoundMessage returns the entity-naming message of a *NotFoundError, or
// a generic one.
func notFoundMessage(err error) string {
	var nf *database.NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}
	return "Resource not found"
}
