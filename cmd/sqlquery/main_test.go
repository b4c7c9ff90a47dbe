package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/foreline/sqlquery"
)

func writeDefinition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "query.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write definition: %v", err)
	}
	return path
}

func TestRunRendersDefinition(t *testing.T) {
	path := writeDefinition(t, `
kind: delete
table: logs
where:
  - created_at < '2020-01-01'
`)
	var out, diag bytes.Buffer
	if err := run(path, false, &out, &diag); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "DELETE FROM `logs` WHERE created_at < '2020-01-01'\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
	if diag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %q", diag.String())
	}
}

func TestRunDebugWritesToStderr(t *testing.T) {
	path := writeDefinition(t, "kind: delete\ntable: logs\n")
	var out, diag bytes.Buffer
	if err := run(path, true, &out, &diag); err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "DELETE FROM `logs`\n"; out.String() != want {
		t.Fatalf("stdout: got %q, want %q", out.String(), want)
	}
	if !strings.Contains(diag.String(), "loaded DELETE statement from "+path) {
		t.Errorf("stderr misses the load line: %q", diag.String())
	}
	if !strings.HasSuffix(diag.String(), "] DELETE FROM `logs`\n") {
		t.Errorf("stderr misses the debug line: %q", diag.String())
	}
}

func TestRunUnsupportedKind(t *testing.T) {
	path := writeDefinition(t, "kind: replace\ntable: users\n")
	var out bytes.Buffer
	err := run(path, false, &out, io.Discard)
	if !errors.Is(err, sqlquery.ErrUnsupportedKind) {
		t.Fatalf("got error %v, want %v", err, sqlquery.ErrUnsupportedKind)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	if err := run(filepath.Join(t.TempDir(), "missing.yaml"), false, &out, io.Discard); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
