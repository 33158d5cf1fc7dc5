package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fakeimage/pkg/sizes"
)

// Registry returns the stock host sizes (thumbnail 150x150, medium 300x300,
// large 1024x1024) plus two custom sizes: hero 1600x600 and card 400x250.
func Registry() *sizes.Static {
	reg := sizes.Defaults()
	reg.AddSize("hero", sizes.Dimensions{Width: 1600, Height: 600})
	reg.AddSize("card", sizes.Dimensions{Width: 400, Height: 250})
	return reg
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustJSON marshals value with two-space indentation and a trailing newline,
// matching the layout of the golden files.
func MustJSON(t *testing.T, value any) []byte {
	t.Helper()

	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	return append(payload, '\n')
}

// AssertGoldenJSON compares value's JSON against the golden file at path.
// With UPDATE_GOLDENS set the golden is rewritten instead.
func AssertGoldenJSON(t *testing.T, path string, value any) {
	t.Helper()

	got := MustJSON(t, value)
	if os.Getenv("UPDATE_GOLDENS") != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir golden dir: %v", err)
		}
		if err := os.WriteFile(path, got, 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if diff := cmp.Diff(strings.TrimSpace(string(want)), strings.TrimSpace(string(got))); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", path, diff)
	}
}

// Logger returns a debug-level text logger and the buffer it writes to.
func Logger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}
