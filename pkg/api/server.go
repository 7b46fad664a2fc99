package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/jigsaw/pkg/api/handlers"
	"github.com/cbodonnell/jigsaw/pkg/api/middleware"
	authproviders "github.com/cbodonnell/jigsaw/pkg/auth/providers"
	"github.com/cbodonnell/jigsaw/pkg/log"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port        int
	TLS         *TLSConfig
	AllowOrigin string
	// AuthProvider is optional. When set, command invocations require a bearer token.
	AuthProvider authproviders.AuthProvider
	Invoker      handlers.Invoker
}

// NewRouter builds the routes served by the APIServer.
func NewRouter(opts NewAPIServerOptions) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.NewCORSMiddleware(opts.AllowOrigin))

	router.HandleFunc("/healthz", handlers.HandleHealth()).Methods(http.MethodGet)
	router.HandleFunc("/commands", handlers.HandleListCommands(opts.Invoker)).Methods(http.MethodGet, http.MethodOptions)

	invoke := router.PathPrefix("/invoke").Subrouter()
	if opts.AuthProvider != nil {
		invoke.Use(middleware.NewAuthMiddleware(opts.AuthProvider))
	}
	invoke.HandleFunc("/{command}", handlers.HandleInvoke(opts.Invoker)).Methods(http.MethodPost, http.MethodOptions)

	return router
}

// NewAPIServer creates a new http.Server for handling command requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
