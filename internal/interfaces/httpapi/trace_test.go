package httpapi

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	_, orphan := startSpan(context.Background(), "httpapi.Handler.GetDemonlist")
	orphan.End()
	if got := len(recorder.Ended()); got != 0 {
		t.Fatalf("expected no span without a request span, got %d", got)
	}

	ctx, parent := provider.Tracer("test").Start(context.Background(), "GET /v1/demonlist")
	ctx = withRequestID(ctx, "req-7")

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "handler span", in: "httpapi.Handler.GetDemonlist", want: true},
		{name: "middleware span", in: "httpapi.RequestLogging", want: false},
		{name: "helper span", in: "httpapi.writeError", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(recorder.Ended())
			_, span := startSpan(ctx, tt.in)
			span.End()
			got := len(recorder.Ended()) > before
			if got != tt.want {
				t.Fatalf("startSpan(%q) recorded=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
	parent.End()

	var found bool
	for _, span := range recorder.Ended() {
		if span.Name() != "httpapi.Handler.GetDemonlist" {
			continue
		}
		for _, attr := range span.Attributes() {
			if string(attr.Key) == "demonlist.request_id" && attr.Value.AsString() == "req-7" {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("expected handler span to carry the request id")
	}
}
