// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of FREQGATE.
//
//  FREQGATE is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  FREQGATE is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with FREQGATE.  If not, see <https://www.gnu.org/licenses/>.

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"freqgate/merror"
	"freqgate/pos"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// validateQuery checks that a query is a non-empty sequence
// of words separated by single spaces
func validateQuery(q string) error {
	if q == "" {
		return merror.InputError{Msg: "missing `q` argument"}
	}
	if strings.TrimSpace(q) != q {
		return merror.InputError{Msg: "query must not start or end with a whitespace"}
	}
	if strings.Contains(q, "  ") {
		return merror.InputError{Msg: "query words must be separated by a single space"}
	}
	return nil
}

func (a *Actions) posSchemeOrFail(ctx *gin.Context) (pos.Scheme, bool) {
	scheme := pos.Scheme(ctx.DefaultQuery("posScheme", a.dfltPosScheme.String()))
	if err := scheme.Validate(); err != nil {
		respondWithError(ctx, merror.InputError{Msg: err.Error()})
		return "", false
	}
	return scheme, true
}

func (a *Actions) language(ctx *gin.Context) string {
	return ctx.DefaultQuery("lang", a.dfltLanguage)
}

// respondWithError writes a JSON error response with an HTTP status
// derived from the error type
func respondWithError(ctx *gin.Context, err error) {
	status := merror.HTTPStatusOf(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("failed to process request")
	}
	var inputErr merror.InputError
	if errors.As(err, &inputErr) || status == http.StatusNotFound {
		uniresp.RespondWithErrorJSON(ctx, err, status)
		return
	}
	uniresp.WriteJSONErrorResponse(
		ctx.Writer,
		uniresp.NewActionErrorFrom(err),
		status,
	)
}
