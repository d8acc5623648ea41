package mq

import (
	"github.com/twmb/franz-go/plugin/kotel"
	"go.opentelemetry.io/otel"
)

// tracer covers the produce path, kTracer hooks the client itself.
var (
	tracer  = otel.Tracer("internal/storage/mq")
	kTracer = kotel.NewTracer()
)
