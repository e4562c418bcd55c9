package otel

import (
	"context"
	"testing"
)

func TestSetupDisabledByExplicitFlag(t *testing.T) {
	t.Setenv("SPRITE_TERMINAL_OTEL_ENABLED", "false")
	t.Setenv("SPRITE_TERMINAL_OTEL_ENDPOINT", "http://localhost:4318")

	shutdown, err := Setup(context.Background(), "terminal")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if shutdown == nil {
		t.Fatal("Setup() shutdown = nil, want no-op function")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown() error = %v", err)
	}
}

func TestSetupNoopWithoutEndpoint(t *testing.T) {
	t.Setenv("SPRITE_TERMINAL_OTEL_ENABLED", "")
	t.Setenv("SPRITE_TERMINAL_OTEL_ENDPOINT", "")

	shutdown, err := Setup(context.Background(), "terminal")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown() error = %v", err)
	}
}
