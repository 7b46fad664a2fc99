package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/jigsaw/pkg/api"
	authproviders "github.com/cbodonnell/jigsaw/pkg/auth/providers"
	"github.com/cbodonnell/jigsaw/pkg/commands"
	"github.com/cbodonnell/jigsaw/pkg/log"
	"github.com/cbodonnell/jigsaw/pkg/network"
	"github.com/cbodonnell/jigsaw/pkg/repositories"
	"github.com/cbodonnell/jigsaw/pkg/state"
	"github.com/cbodonnell/jigsaw/pkg/version"
)

func main() {
	port := flag.Int("port", 9090, "HTTP port to listen on")
	wsPort := flag.Int("ws-port", 9091, "WebSocket port to listen on, 0 to disable")
	allowOrigin := flag.String("allow-origin", "*", "comma-separated list of allowed origins")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting jigsaw server version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connStr := os.Getenv("JIGSAW_DATABASE_URL")
	if connStr == "" {
		connStr = "memory://"
	}
	repository, err := repositories.New(ctx, connStr)
	if err != nil {
		panic(fmt.Sprintf("Failed to create repository: %v", err))
	}
	if repository != nil {
		defer repository.Close(context.Background())
	} else {
		log.Warn("No database configured, puzzles and scores will not survive a restart")
	}

	store := state.NewInMemoryStore(repository)
	if err := store.Restore(ctx); err != nil {
		panic(fmt.Sprintf("Failed to restore state: %v", err))
	}

	dispatcher := commands.NewDispatcher(commands.NewService(commands.NewServiceOptions{
		Store: store,
	}))

	var authProvider authproviders.AuthProvider
	if firebaseProjectID := os.Getenv("JIGSAW_FIREBASE_PROJECT_ID"); firebaseProjectID != "" {
		firebaseAuthProvider, err := authproviders.NewFirebaseAuthProvider(ctx, firebaseProjectID, os.Getenv("JIGSAW_FIREBASE_CREDENTIALS_FILE"))
		if err != nil {
			panic(fmt.Sprintf("Failed to create Firebase auth provider: %v", err))
		}
		authProvider = firebaseAuthProvider
		log.Info("Firebase authentication enabled for project %s", firebaseProjectID)
	}

	tlsCertFile := os.Getenv("JIGSAW_API_TLS_CERT_FILE")
	tlsKeyFile := os.Getenv("JIGSAW_API_TLS_KEY_FILE")

	apiServerOpts := api.NewAPIServerOptions{
		Port:         *port,
		AllowOrigin:  *allowOrigin,
		AuthProvider: authProvider,
		Invoker:      dispatcher,
	}
	if tlsCertFile != "" && tlsKeyFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: tlsCertFile,
			KeyFile:  tlsKeyFile,
		}
	}
	apiServer := api.NewAPIServer(apiServerOpts)
	go apiServer.Start()

	var wsServer *network.WSServer
	if *wsPort != 0 {
		wsServerOpts := network.NewWSServerOptions{
			Port:         *wsPort,
			AllowOrigin:  *allowOrigin,
			AuthProvider: authProvider,
			Invoker:      dispatcher,
		}
		if tlsCertFile != "" && tlsKeyFile != "" {
			wsServerOpts.TLS = &network.TLSConfig{
				CertFile: tlsCertFile,
				KeyFile:  tlsKeyFile,
			}
		}
		wsServer = network.NewWSServer(wsServerOpts)
		go wsServer.Start(ctx)
	}

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop API server: %v", err)
	}
	if wsServer != nil {
		if err := wsServer.Stop(shutdownCtx); err != nil {
			log.Error("Failed to stop WebSocket server: %v", err)
		}
	}
}
