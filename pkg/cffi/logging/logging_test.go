package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/coinbase/cffi-go/pkg/cffi/logging"
)

func TestNewNilBindsDefault(t *testing.T) {
	if logging.New(nil) == nil {
		t.Fatal("New(nil) returned nil")
	}
}

func TestWithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(slog.New(slog.NewTextHandler(&buf, nil)))
	l = l.With("component", "ptr")
	l.Info(context.Background(), "wrapped", "addr", "0x1")

	out := buf.String()
	if !strings.Contains(out, "component=ptr") {
		t.Fatalf("With attribute missing from output: %q", out)
	}
	if !strings.Contains(out, "wrapped") {
		t.Fatalf("message missing from output: %q", out)
	}
}
