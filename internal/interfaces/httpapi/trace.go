package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("demonlist/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// startSpan opens a handler span under the request span started by
// RequestTracing. Untraced routes such as /healthz get a no-op span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, noopSpan
	}
	if !strings.HasPrefix(name, "httpapi.Handler.") {
		return ctx, noopSpan
	}

	var opts []trace.SpanStartOption
	if requestID := requestIDFromContext(ctx); requestID != "" {
		opts = append(opts, trace.WithAttributes(attribute.String("demonlist.request_id", requestID)))
	}
	return apiTracer.Start(ctx, name, opts...)
}
