// Copyright (c) 2024 SailPoint Technologies, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/sailpoint-oss/colab-saas-conn-pan-customer-service-portal/cmd/connector/service"

	"goa.design/clue/debug"
	goahttp "goa.design/goa/v3/http"
)

// handleHTTPServer starts the HTTP server for health check endpoints
func handleHTTPServer(ctx context.Context, host string, healthService *service.HealthService, wg *sync.WaitGroup, errc chan<- error, dbg bool) {

	// Build the service HTTP request multiplexer and mount debug and profiler
	// endpoints in debug mode.
	var mux goahttp.Muxer
	{
		mux = goahttp.NewMuxer()
		if dbg {
			// Mount pprof handlers for memory profiling under /debug/pprof.
			debug.MountPprofHandlers(debug.Adapt(mux))
			// Mount /debug endpoint to enable or disable debug logs at runtime.
			debug.MountDebugLogEnabler(debug.Adapt(mux))
		}
	}

	mux.Handle("GET", "/livez", healthHandler(healthService.Livez))
	mux.Handle("GET", "/readyz", healthHandler(healthService.Readyz))

	for _, pattern := range []string{"/livez", "/readyz"} {
		slog.InfoContext(ctx, "HTTP endpoint mounted",
			"method", "GET",
			"pattern", pattern,
		)
	}

	// Wrap the multiplexer with additional middlewares. Middlewares mounted
	// here apply to all the service endpoints.
	var handler http.Handler = mux
	if dbg {
		// Log query and response bodies if debug logs are enabled.
		handler = debug.HTTP()(handler)
	}

	srv := &http.Server{Addr: host, Handler: handler, ReadHeaderTimeout: time.Second * 60}

	wg.Add(1)
	go func() {
		defer wg.Done()

		go func() {
			<-ctx.Done()
			slog.InfoContext(ctx, "shutting down HTTP server", "host", host)

			// Shutdown gracefully with a 30 second timeout.
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				slog.ErrorContext(ctx, "HTTP server shutdown error", "error", err)
			}
		}()

		slog.InfoContext(ctx, "HTTP server listening", "host", host)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			errc <- err
		}
	}()
}

// healthHandler adapts a probe function to an HTTP handler. Probe failures
// surface as 503 so orchestrators take the instance out of rotation.
func healthHandler(probe func(context.Context) ([]byte, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := probe(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "health probe failed", "error", err)
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write(body)
	}
}
