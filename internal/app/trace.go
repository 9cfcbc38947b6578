package app

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var appTracer = otel.Tracer("catalog/internal/app")

// startStageSpan opens the root span for one pipeline stage. The binary is
// a batch process with no inbound request to inherit a trace from, so each
// stage roots its own and the usecase and database spans hang off it.
func startStageSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return appTracer.Start(ctx, name)
}
