package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestZapLogger_WritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := newZapLogger(&buf, slog.LevelDebug)

	ctx := WithRequestID(context.Background(), "r-1")
	l.With("module", "llm").Info(ctx, "completed", "len", 12)

	line := strings.TrimSpace(buf.String())
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("output is not JSON: %q (%v)", line, err)
	}
	if rec["msg"] != "completed" || rec["module"] != "llm" || rec["request_id"] != "r-1" {
		t.Fatalf("unexpected record: %v", rec)
	}
	if rec["len"] != float64(12) {
		t.Fatalf("expected len=12, got %v", rec["len"])
	}
}

func TestZapLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := newZapLogger(&buf, slog.LevelWarn)
	ctx := context.Background()

	l.Debug(ctx, "hidden-debug")
	l.Info(ctx, "hidden-info")
	l.Warn(ctx, "shown-warn")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("records below warn must be dropped:\n%s", out)
	}
	if !strings.Contains(out, "shown-warn") {
		t.Fatalf("expected warn record:\n%s", out)
	}
}
