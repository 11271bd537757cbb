package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/demonlist/internal/domain/listerr"
)

var usecaseTracer = otel.Tracer("demonlist/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name)
}

// endSpan records the domain error code of err, if any, and ends span.
func endSpan(span trace.Span, err error) {
	if err != nil && span.IsRecording() {
		if domainErr, ok := listerr.As(err); ok {
			span.SetAttributes(attribute.Int("demonlist.error_code", domainErr.Code()))
		}
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
