package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		key   string
		val   string
	}{
		{"DEBUG", "dbg", "a", "1"},
		{"INFO", "inf", "b", "2"},
		{"WARN", "wrn", "c", "3"},
		{"ERROR", "err", "d", "4"},
	}

	for _, tc := range tests {
		if !strings.Contains(out, "level="+tc.level) {
			t.Fatalf("expected line with level=%s in output:\n%s", tc.level, out)
		}
		if !strings.Contains(out, "msg="+tc.msg) {
			t.Fatalf("expected line with msg=%q in output:\n%s", tc.msg, out)
		}
		if !strings.Contains(out, tc.key+"="+tc.val) {
			t.Fatalf("expected attribute %s=%s in output:\n%s", tc.key, tc.val, out)
		}
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("module", "chat", "user_id", "u-1").Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	for _, s := range []string{"level=INFO", "msg=hello", "module=chat", "user_id=u-1", "k=v"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestSlogLogger_RequestIDFromContext(t *testing.T) {
	log, buf := newTestLogger(t)

	ctx := WithRequestID(context.Background(), "req-42")
	log.Warn(ctx, "slow")

	if !strings.Contains(buf.String(), "request_id=req-42") {
		t.Fatalf("expected request_id in output, got:\n%s", buf.String())
	}
}

func TestRequestID_EmptyWhenMissing(t *testing.T) {
	if got := RequestID(context.Background()); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}
}

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		format  string
		level   string
		wantErr bool
	}{
		{"json", "info", false},
		{"text", "debug", false},
		{"zap", "warn", false},
		{"", "error", false},
		{"xml", "info", true},
		{"json", "loud", true},
	}

	for _, tt := range tests {
		t.Run(tt.format+"/"+tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(tt.format, tt.level, &buf)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil || l == nil {
				t.Fatalf("New: %v", err)
			}
			l.Error(context.Background(), "boom", "k", "v")
			if !strings.Contains(buf.String(), "boom") {
				t.Fatalf("expected message in output, got %q", buf.String())
			}
		})
	}
}

func TestNop_DoesNotPanic(t *testing.T) {
	var l Logger = Nop{}
	ctx := context.TODO()
	l.Debug(ctx, "x")
	l.With("a", 1).Error(ctx, "y")
}

func TestSlogLogger_RequestIDSurvivesWithAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil)).WithGroup("chat")
	log := NewSlogLogger(base).With("module", "orchestrator")

	log.Info(WithRequestID(context.Background(), "req-7"), "asked")

	out := buf.String()
	for _, s := range []string{`"module":"orchestrator"`, `"request_id":"req-7"`} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %s in output, got:\n%s", s, out)
		}
	}
}

func TestSlogLogger_NoRequestIDWithoutContextValue(t *testing.T) {
	log, buf := newTestLogger(t)

	log.Info(context.Background(), "plain")

	if strings.Contains(buf.String(), "request_id") {
		t.Fatalf("unexpected request_id in output:\n%s", buf.String())
	}
}

func TestNew_RedactsSecrets(t *testing.T) {
	for _, format := range []string{"json", "text", "zap"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(format, "debug", &buf)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			ctx := WithRequestID(context.Background(), "req-9")

			l.With("llm_api_key", "sk-live-123").Info(ctx, "registering", "email", "a@x.io", "password", "hunter2")

			out := buf.String()
			for _, leaked := range []string{"hunter2", "sk-live-123"} {
				if strings.Contains(out, leaked) {
					t.Fatalf("secret %q leaked into output:\n%s", leaked, out)
				}
			}
			for _, want := range []string{"a@x.io", "req-9", redacted} {
				if !strings.Contains(out, want) {
					t.Fatalf("expected %q in output, got:\n%s", want, out)
				}
			}
		})
	}
}
