package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/trananhhq/shopbill/internal/http/apierr"
)

// Recoverer turns a handler panic into a logged 500 with the standard error
// body. http.ErrAbortHandler is re-raised so the response stays aborted.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	body, err := json.Marshal(apierr.ErrorResponse{Error: "internal server error"})
	if err != nil {
		panic(err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				log.ErrorContext(r.Context(), "panic",
					slog.Any("recover", rvr),
					slog.String("stack", string(debug.Stack())),
				)

				if r.Header.Get("Connection") != "Upgrade" {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					//nolint:errcheck
					w.Write(body)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
