/*
Copyright 2026 the PetFriends QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package server provides an in-memory reference implementation of the
// PetFriends API.  It honours the documented status code contract and is
// what the conformance suite runs against when no live service is configured.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/petfriends-qa/conformance/pkg/server/handler"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	ErrNoAccounts = errors.New("at least one account is required")
)

// Options configures the server.
type Options struct {
	// ListenAddress is where the server listens.
	ListenAddress string

	// Accounts maps email to password.
	Accounts map[string]string

	// ReadTimeout bounds reading a request.
	ReadTimeout time.Duration

	// WriteTimeout bounds writing a response.
	WriteTimeout time.Duration
}

// AddFlags registers options with a flag set.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "listen-address", ":6080", "API listener address.")
	f.StringToStringVar(&o.Accounts, "account", nil, "Account as email=password, may be repeated.")
	f.DurationVar(&o.ReadTimeout, "read-timeout", time.Second, "How long to wait for the client to send the request body.")
	f.DurationVar(&o.WriteTimeout, "write-timeout", 10*time.Second, "How long to wait for the API to respond to the client.")
}

// Validate checks the options are usable.
func (o *Options) Validate() error {
	if len(o.Accounts) == 0 {
		return ErrNoAccounts
	}

	return nil
}

// NewRouter returns the API routes for a handler, logging through logger.
func NewRouter(h *handler.Handler, logger logr.Logger) chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(requestLogger(logger))

	router.Get("/api/key", h.GetApiKey)
	router.Route("/api/pets", func(r chi.Router) {
		r.Get("/", h.GetApiPets)
		r.Post("/", h.PostApiPets)
		r.Put("/{petID}", func(w http.ResponseWriter, r *http.Request) {
			h.PutApiPetsPetID(w, r, chi.URLParam(r, "petID"))
		})
		r.Delete("/{petID}", func(w http.ResponseWriter, r *http.Request) {
			h.DeleteApiPetsPetID(w, r, chi.URLParam(r, "petID"))
		})
		r.Post("/set_photo/{petID}", func(w http.ResponseWriter, r *http.Request) {
			h.PostApiPetsSetPhotoPetID(w, r, chi.URLParam(r, "petID"))
		})
	})
	router.Post("/api/create_pet_simple", h.PostApiCreatePetSimple)

	return router
}

// requestLogger attaches a request scoped logger to the context and logs
// the outcome of every request.
func requestLogger(logger logr.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := logger.WithValues("requestID", middleware.GetReqID(r.Context()))

			if traceParent := r.Header.Get("Traceparent"); traceParent != "" {
				l = l.WithValues("traceparent", traceParent)
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(log.IntoContext(r.Context(), l)))

			l.V(1).Info("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(start))
		})
	}
}

// Server is the reference PetFriends service.
type Server struct {
	// Options are exposed for flag binding.
	Options Options
}

// Handler returns the HTTP handler, used directly by tests.
func (s *Server) Handler(ctx context.Context) http.Handler {
	return NewRouter(handler.New(s.Options.Accounts), log.FromContext(ctx))
}

// Run serves the API on the configured address until the context is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Options.Validate(); err != nil {
		return err
	}

	var lc net.ListenConfig

	listener, err := lc.Listen(ctx, "tcp", s.Options.ListenAddress)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.Options.ListenAddress, err)
	}

	return s.Serve(ctx, listener)
}

// Serve serves the API on listener until the context is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	logger := log.FromContext(ctx)

	server := &http.Server{
		ReadTimeout:       s.Options.ReadTimeout,
		ReadHeaderTimeout: s.Options.ReadTimeout,
		WriteTimeout:      s.Options.WriteTimeout,
		Handler:           s.Handler(ctx),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error(err, "server shutdown failed")
		}
	}()

	logger.Info("listening", "address", listener.Addr().String(), "accounts", len(s.Options.Accounts))

	if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving API: %w", err)
	}

	return nil
}
