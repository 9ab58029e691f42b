package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(path, []byte("- Buy milk\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := readInput([]string{path})
	if err != nil {
		t.Fatalf("readInput() error: %v", err)
	}
	if got != "- Buy milk\n" {
		t.Errorf("readInput() = %q, want %q", got, "- Buy milk\n")
	}
}

func TestReadInputMissingFile(t *testing.T) {
	_, err := readInput([]string{filepath.Join(t.TempDir(), "nope.md")})
	if err == nil {
		t.Fatal("readInput() expected error for missing file")
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printJSON(&buf, map[string]int{"count": 2}); err != nil {
		t.Fatalf("printJSON() error: %v", err)
	}

	var decoded map[string]int
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["count"] != 2 {
		t.Errorf("decoded count = %d, want 2", decoded["count"])
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("output missing trailing newline")
	}
}
