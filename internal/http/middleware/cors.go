package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/trananhhq/shopbill/pkg/correlationid"
)

func Cors() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", correlationid.Header},
		ExposedHeaders: []string{"Content-Disposition", correlationid.Header},
		MaxAge:         300,
	})
}
