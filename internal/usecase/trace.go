package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("catalog/internal/usecase")

// startUsecaseSpan opens a child span only when a sampled trace is already
// in flight. The pipeline runs fine with no tracer configured, so an
// unnamed or orphan request gets the ambient no-op span instead.
func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	noop := trace.SpanFromContext(context.Background())
	if strings.TrimSpace(name) == "" {
		return ctx, noop
	}
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noop
	}
	return tracer.Start(ctx, name)
}
