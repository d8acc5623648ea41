// Package outbox carries trace context and correlation IDs between the
// outbox table and Kafka record headers.
package outbox

import (
	"context"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/trananhhq/shopbill/pkg/correlationid"
)

// BuildHeaders snapshots the trace context and correlation ID of ctx into a
// header map suitable for storing alongside an outbox row.
func BuildHeaders(ctx context.Context) map[string]string {
	headers := map[string]string{}
	otel.GetTextMapPropagator().Inject(ctx, propagation.MapCarrier(headers))

	if id, ok := correlationid.FromContext(ctx); ok {
		headers[correlationid.Header] = id
	}

	return headers
}

// ContextFromRecord restores the trace context and correlation ID that
// BuildHeaders stored, reading them back from the headers of a consumed
// record.
func ContextFromRecord(ctx context.Context, rec *kgo.Record) context.Context {
	headers := make(map[string]string, len(rec.Headers))
	for _, h := range rec.Headers {
		headers[h.Key] = string(h.Value)
	}

	ctx = otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(headers))
	if id, ok := headers[correlationid.Header]; ok {
		ctx = correlationid.NewContext(ctx, id)
	}

	return ctx
}
