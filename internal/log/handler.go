package log

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/trananhhq/shopbill/pkg/correlationid"
)

var _ slog.Handler = (*contextHandler)(nil)

// contextHandler copies the correlation ID and active span identifiers from
// the record's context into the record itself.
type contextHandler struct {
	next slog.Handler
}

func newContextHandler(next slog.Handler) contextHandler {
	return contextHandler{next: next}
}

func (h contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := correlationid.FromContext(ctx); ok {
		r.Add("correlation_id", slog.StringValue(id))
	}

	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		r.Add("trace_id", slog.StringValue(sc.TraceID().String()))
		r.Add("span_id", slog.StringValue(sc.SpanID().String()))
	}

	return h.next.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newContextHandler(h.next.WithAttrs(attrs))
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return newContextHandler(h.next.WithGroup(name))
}
