package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/trananhhq/shopbill/pkg/correlationid"
)

// CorrelationID propagates the caller's correlation ID, or mints one when the
// request carries none. The ID is echoed back in the response headers.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(correlationid.Header)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(correlationid.Header, id)

			ctx := correlationid.NewContext(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
