package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cbodonnell/jigsaw/pkg/commands"
	"github.com/cbodonnell/jigsaw/pkg/log"
	"github.com/cbodonnell/jigsaw/pkg/version"
	"github.com/gorilla/mux"
)

// MaxRequestBodyBytes bounds the argument object of a single command.
const MaxRequestBodyBytes = 1 << 20

// Invoker runs a named command, see commands.Dispatcher.
type Invoker interface {
	Invoke(ctx context.Context, name string, args json.RawMessage) (interface{}, error)
	Commands() []string
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}

// HandleInvoke runs the command named in the path with the request body
// as its argument object. Envelopes are always sent with status 200.
func HandleInvoke(invoker Invoker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["command"]

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes))
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			log.Error("failed to read request body: %v", err)
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}

		response, err := invoker.Invoke(r.Context(), name, body)
		if err != nil {
			if commands.IsUnknownCommand(err) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			if commands.IsInvalidArguments(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error("failed to invoke %s: %v", name, err)
			http.Error(w, "Failed to invoke command", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func HandleListCommands(invoker Invoker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, invoker.Commands())
	}
}

func HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version.Get(),
		})
	}
}
