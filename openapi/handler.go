// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2026 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package openapi

import (
	"net/http"
	"strings"

	"freqgate/cnf"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

func findHTTPProtocol(req *http.Request) string {
	if prot := req.Header.Get("x-forwarded-proto"); prot != "" {
		return prot
	}
	if req.TLS != nil {
		return "https"
	}
	return "http"
}

func findHTTPServer(req *http.Request) string {
	if serv := req.Header.Get("x-forwarded-host"); serv != "" {
		return serv
	}
	return req.Host
}

func findPathPrefix(req *http.Request) string {
	if path := req.Header.Get("x-forwarded-prefix"); path != "" {
		return "/" + strings.Trim(path, "/")
	}
	return ""
}

// findCurrentPublicURL determines a public URL of the service as seen
// by the client. In case the request did not pass through a proxy,
// the configured public URL is used.
func findCurrentPublicURL(conf *cnf.Conf, req *http.Request) string {
	if req.Header.Get("x-forwarded-host") == "" && conf.PublicURL != "" {
		return strings.TrimRight(conf.PublicURL, "/")
	}
	return findHTTPProtocol(req) + "://" + findHTTPServer(req) + findPathPrefix(req)
}

func MkHandleRequest(conf *cnf.Conf, ver string) func(ctx *gin.Context) {
	return func(ctx *gin.Context) {
		publicURL := findCurrentPublicURL(conf, ctx.Request)
		ans := NewResponse(ver, publicURL)
		uniresp.WriteJSONResponse(ctx.Writer, ans)
	}
}
