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

package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"freqgate/cnf"
	"freqgate/handlers"
	"freqgate/kdb"
	"freqgate/monitoring"
	"freqgate/openapi"
	"freqgate/qmatch"
	"freqgate/rdb"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "freqgate/docs"
)

type apiServer struct {
	server     *http.Server
	conf       *cnf.Conf
	version    versionInfo
	pipeline   *qmatch.Pipeline
	callLogger *monitoring.CallLogger
	registry   *prometheus.Registry
}

func mkServerInfo(conf *cnf.Conf, ver versionInfo) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		uniresp.WriteJSONResponse(
			ctx.Writer,
			map[string]any{
				"name":      "FREQGATE",
				"version":   ver,
				"publicUrl": conf.PublicURL,
				"normPath":  conf.KorpusDB.NormPath,
				"cached":    conf.Redis != nil,
			},
		)
	}
}

func (api *apiServer) mkEngine() *gin.Engine {
	if !api.conf.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(additionalLogEvents())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.Use(CORSMiddleware(api.conf))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	freqActions := handlers.NewActions(
		api.pipeline, api.conf.DefaultPosScheme, api.conf.Locales.DefaultLocale())
	monActions := monitoring.NewActions(api.callLogger, api.conf.TimezoneLocation())

	engine.GET("/", mkServerInfo(api.conf, api.version))

	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.GET("/openapi", openapi.MkHandleRequest(api.conf, api.version.Version))

	engine.GET(
		"/metrics",
		gin.WrapH(promhttp.HandlerFor(api.registry, promhttp.HandlerOpts{Registry: api.registry})),
	)

	engine.GET(
		"/query-matches", freqActions.QueryMatches)

	engine.GET(
		"/word-forms/:lemma", freqActions.WordForms)

	engine.GET(
		"/source-info", freqActions.SourceInfo)

	engine.GET(
		"/source-info/:corpusId", freqActions.SourceInfo)

	engine.GET(
		"/similar-freq-words", freqActions.SimilarFreqWords)

	engine.GET(
		"/monitoring/upstream-load", monActions.UpstreamLoad)

	engine.GET(
		"/monitoring/upstream-load/total", monActions.UpstreamTotalLoad)

	return engine
}

func (api *apiServer) Start(ctx context.Context) {
	log.Info().Msgf("starting to listen at %s:%d", api.conf.ListenAddress, api.conf.ListenPort)
	api.server = &http.Server{
		Handler:      api.mkEngine(),
		Addr:         fmt.Sprintf("%s:%d", api.conf.ListenAddress, api.conf.ListenPort),
		WriteTimeout: time.Duration(api.conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(api.conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		if err := api.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
}

func (api *apiServer) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down FREQGATE HTTP API server")
	return api.server.Shutdown(ctx)
}

// newStatusWriter creates a TimescaleDB writer in case the monitoring
// database is configured. Otherwise, calls are not stored anywhere.
func newStatusWriter(ctx context.Context, conf *cnf.Conf) monitoring.StatusWriter {
	if conf.Monitoring == nil {
		return &monitoring.NullStatusWriter{}
	}
	sw, err := monitoring.NewTimescaleDBWriter(ctx, conf.Monitoring.DB, conf.TimezoneLocation())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize monitoring database writer")
	}
	return sw
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func runApiServer(
	conf *cnf.Conf,
	ver versionInfo,
) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache := rdb.NewCache(conf.Redis)
	if cache != nil {
		if err := cache.TestConnection(redisConnectionTestTimeout); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
			return
		}
		defer cache.Close()
	}

	registry := newRegistry()
	var cacheStats monitoring.CacheStatsProvider
	if cache != nil {
		cacheStats = cache
	}
	callLogger := monitoring.NewCallLogger(
		newStatusWriter(ctx, conf),
		monitoring.NewMetrics(registry, cacheStats),
	)
	server := newAPIServer(conf, ver, callLogger, cache, registry)

	services := []service{callLogger, server}
	for _, m := range services {
		m.Start(ctx)
	}
	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range services {
		wg.Add(1)
		go func(srv service) {
			defer wg.Done()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Error().Err(err).Type("service", srv).Msg("Error shutting down service")
			}
		}(s)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}

func newAPIServer(
	conf *cnf.Conf,
	ver versionInfo,
	callLogger *monitoring.CallLogger,
	cache *rdb.Cache,
	registry *prometheus.Registry,
) *apiServer {
	client := kdb.NewClient(conf.KorpusDB, callLogger)
	return &apiServer{
		conf:       conf,
		version:    ver,
		pipeline:   qmatch.NewPipeline(client, kdb.NewCatalog(client), conf.KorpusDB, cache),
		callLogger: callLogger,
		registry:   registry,
	}
}
