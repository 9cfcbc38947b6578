package app

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/sportatlas/catalog/internal/infrastructure/store"
	"github.com/sportatlas/catalog/internal/platform/logging"
)

// The binary has no inbound request to inherit a trace from, so the stage
// methods must root their own spans or the whole tracing stack stays dark.
func TestBuildCatalogRootsStageSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	defer otel.SetTracerProvider(previous)

	dir := t.TempDir()
	writeDataFile(t, dir, store.FileLeagues, `{
		"Spain": [
			{"name": "La Liga", "sport": "Soccer"}
		]
	}`)
	writeDataFile(t, dir, store.FileReference, `{
		"Spain": {"code": "ES", "major_sports": ["Football"]}
	}`)

	a, err := New(testConfig(dir), logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	defer a.Close()

	if _, err := a.BuildCatalog(context.Background()); err != nil {
		t.Fatalf("build catalog: %v", err)
	}

	var stage, usecaseChild bool
	for _, span := range recorder.Ended() {
		switch span.Name() {
		case "pipeline.build":
			stage = true
			if span.Parent().IsValid() {
				t.Fatal("stage span must be a trace root")
			}
		case "CatalogService.BuildCatalog":
			usecaseChild = true
			if !span.Parent().IsValid() {
				t.Fatal("usecase span must parent on the stage span")
			}
		}
	}
	if !stage {
		t.Fatal("missing stage root span")
	}
	if !usecaseChild {
		t.Fatal("missing usecase child span")
	}
}
