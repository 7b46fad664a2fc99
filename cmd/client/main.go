package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/jigsaw/pkg/api"
	"github.com/cbodonnell/jigsaw/pkg/log"
	"github.com/cbodonnell/jigsaw/pkg/version"
)

func main() {
	serverURL := flag.String("server", "http://localhost:9090", "API server base URL")
	command := flag.String("command", "get_puzzles", "command to invoke")
	args := flag.String("args", "{}", "JSON argument object")
	logLevel := flag.String("log-level", "warn", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Debug("Starting client version %s", version.Get())

	if !json.Valid([]byte(*args)) {
		log.Error("Arguments are not valid JSON: %s", *args)
		os.Exit(2)
	}

	client, err := api.NewClient(api.NewClientOptions{
		BaseURL: *serverURL,
		Token:   os.Getenv("JIGSAW_TOKEN"),
	})
	if err != nil {
		log.Error("Failed to create client: %v", err)
		os.Exit(1)
	}

	body, err := client.Invoke(context.Background(), *command, json.RawMessage(*args))
	if err != nil {
		log.Error("Failed to invoke %s: %v", *command, err)
		os.Exit(1)
	}

	out := bytes.NewBuffer(nil)
	if err := json.Indent(out, body, "", "  "); err != nil {
		out = bytes.NewBuffer(body)
	}
	fmt.Println(out.String())
}
