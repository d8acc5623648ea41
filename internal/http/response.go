package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/trananhhq/shopbill/internal/http/apierr"
)

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	res := apierr.New(err)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	writeJSON(w, logger, res.StatusCode, res)
}
