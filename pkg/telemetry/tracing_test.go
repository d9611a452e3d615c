package telemetry

import (
	"context"
	"testing"
)

func TestClampRatio(t *testing.T) {
	cases := map[float64]float64{-1: 0, 0: 0, 0.25: 0.25, 1: 1, 7: 1}
	for in, want := range cases {
		if got := clampRatio(in); got != want {
			t.Fatalf("clampRatio(%v): got %v want %v", in, got, want)
		}
	}
}

func TestTracer_NoopByDefault(t *testing.T) {
	_, span := Tracer().Start(context.Background(), "op")
	defer span.End()
	if span.SpanContext().IsValid() {
		t.Fatalf("without SetupTracing the global provider must be no-op")
	}
}
