package hexdump

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ioc-triage/internal/errs"
)

func TestFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sample.bin")
	if err := os.WriteFile(path, []byte("MZ\x90\x00payload"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	dump, err := File(path)
	if err != nil {
		t.Fatalf("File returned error: %v", err)
	}

	if !strings.HasPrefix(dump, "00000000") {
		t.Fatalf("dump should start with the offset column, got: %q", dump)
	}
	if !strings.Contains(dump, "4d 5a 90 00 70 61 79 6c") {
		t.Fatalf("dump missing hex bytes, got: %q", dump)
	}
	if !strings.Contains(dump, "|MZ..payload|") {
		t.Fatalf("dump missing ASCII gutter, got: %q", dump)
	}
}

func TestFileNotFound(t *testing.T) {
	t.Parallel()

	_, err := File(filepath.Join(t.TempDir(), "missing.bin"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
	if !errs.IsNotFound(err) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
}

func TestBytes(t *testing.T) {
	t.Parallel()

	if got := Bytes(nil); got != "" {
		t.Fatalf("Bytes(nil) = %q, want empty", got)
	}

	got := Bytes([]byte("\x00\x01hi"))
	if !strings.HasPrefix(got, "00000000") {
		t.Fatalf("dump should start with the offset column, got: %q", got)
	}
	if !strings.Contains(got, "00 01 68 69") {
		t.Fatalf("dump missing hex bytes, got: %q", got)
	}
	if !strings.Contains(got, "|..hi|") {
		t.Fatalf("dump missing ASCII gutter, got: %q", got)
	}
}
