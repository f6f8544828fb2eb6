// Copyright 2026 Martin Zimandl <martin.zimandl@gmail.com>
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

package monitoring

import (
	"net/http"
	"time"

	"github.com/czcorpus/cnc-gokit/datetime"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

const (
	dfltLoadAgo = "1h"
)

type Actions struct {
	logger   *CallLogger
	location *time.Location
}

// UpstreamLoad godoc
// @Summary      Recent load of the frequency database
// @Description  Summarizes recent frequency database calls finished within a specified time span
// @Produce      json
// @Param        ago query string false "time span (e.g. 30m, 1h, 2d)" default(1h)
// @Success      200 {object} any
// @Router       /monitoring/upstream-load [get]
func (a *Actions) UpstreamLoad(ctx *gin.Context) {
	now := time.Now().In(a.location)
	dur, err := datetime.ParseDuration(ctx.DefaultQuery("ago", dfltLoadAgo))
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, a.logger.RecentLoad(now.Add(-dur), now))
}

// UpstreamTotalLoad godoc
// @Summary      Total load of the frequency database
// @Description  Summarizes all the frequency database calls since the service start, grouped by API function
// @Produce      json
// @Success      200 {object} any
// @Router       /monitoring/upstream-load/total [get]
func (a *Actions) UpstreamTotalLoad(ctx *gin.Context) {
	uniresp.WriteJSONResponse(ctx.Writer, a.logger.TotalLoad())
}

func NewActions(
	logger *CallLogger,
	location *time.Location,
) *Actions {
	ans := &Actions{
		logger:   logger,
		location: location,
	}
	return ans
}
