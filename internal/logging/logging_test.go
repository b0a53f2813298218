package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewFileWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	w, err := newFileWriter(dir)
	if err != nil {
		t.Fatalf("newFileWriter() error = %v", err)
	}
	defer w.Close()

	if w.Filename != filepath.Join(dir, "scm-mcp.log") {
		t.Errorf("Filename = %s", w.Filename)
	}
	if _, err := os.Stat(filepath.Join(dir, ".write-test")); !os.IsNotExist(err) {
		t.Errorf("write-test file was not removed")
	}
}

func TestNewFileWriter_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := newFileWriter(file); err == nil {
		t.Error("expected error when the log path is a file")
	}
}
