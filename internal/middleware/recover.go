package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"skyboard/flightdeck/internal/auth"
	"skyboard/flightdeck/internal/constants"
	"skyboard/flightdeck/internal/logging"
	"skyboard/flightdeck/internal/models/dtos"
)

// RecoverMiddleware turns a handler panic into a 500 JSON envelope
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil || rec == http.ErrAbortHandler {
				if rec != nil {
					panic(rec)
				}
				return
			}

			logging.Error("Panic while serving request",
				"request_id", auth.GetRequestID(r.Context()),
				"path", r.URL.Path,
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			writeError(w, http.StatusInternalServerError, panicMessage(rec))
		}()

		next.ServeHTTP(w, r)
	})
}

// panicMessage renders a recovered value for the error envelope
func panicMessage(rec any) string {
	var msg string
	if err, ok := rec.(error); ok {
		msg = err.Error()
	} else {
		msg = fmt.Sprint(rec)
	}
	if msg == "" {
		return constants.MsgInternalServerError
	}
	return msg
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(dtos.APIResponse{Success: false, Error: message})
}
