package telemetry

import (
	"context"
	"errors"
	"testing"
)

func TestSetupDisabled(t *testing.T) {
	ctx := context.Background()

	shutdown, err := Setup(ctx, false)
	if err != nil {
		t.Fatalf("Setup(false) failed: %v", err)
	}
	if err := shutdown(ctx); err != nil {
		t.Errorf("shutdown failed: %v", err)
	}

	_, span := Tracer("test").Start(ctx, "test.span")
	if span.SpanContext().IsSampled() {
		t.Error("Disabled telemetry should not sample spans")
	}
	span.End()
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "noop")
	if span.IsRecording() {
		t.Error("Noop tracer span should not record")
	}
	span.End()
}

func TestFail(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "fail")
	defer span.End()

	if Fail(span, nil) != nil {
		t.Error("Fail(nil) should return nil")
	}
	err := errors.New("boom")
	if got := Fail(span, err); got != err {
		t.Errorf("Fail returned %v, want the same error", got)
	}
}
