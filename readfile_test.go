package machineuid

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// writeTestFile creates a file with the given content inside dir.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}

	return path
}

func TestReadTrimmedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "machine-id", "abc123\n")

	got, err := readTrimmedFile(path)
	if err != nil {
		t.Fatalf("readTrimmedFile() error = %v", err)
	}

	if got != "abc123" {
		t.Errorf("readTrimmedFile() = %q, want %q", got, "abc123")
	}
}

func TestReadTrimmedFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := readTrimmedFile(path)
	if err == nil {
		t.Fatal("Expected error for missing file")
	}

	var fileErr *FileError
	if !errors.As(err, &fileErr) {
		t.Fatalf("readTrimmedFile() error = %v, want FileError", err)
	}

	if fileErr.Path != path {
		t.Errorf("FileError.Path = %q, want %q", fileErr.Path, path)
	}

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error chain should contain os.ErrNotExist, got %v", err)
	}
}

func TestReadFirstAvailable(t *testing.T) {
	dir := t.TempDir()
	primary := writeTestFile(t, dir, "primary", "abc123\n")
	fallback := writeTestFile(t, dir, "fallback", "def456\n")
	missing := filepath.Join(dir, "missing")

	tests := []struct {
		name    string
		paths   []string
		want    string
		wantErr bool
	}{
		{
			name:  "primary readable",
			paths: []string{primary, fallback},
			want:  "abc123",
		},
		{
			name:  "primary missing, fallback readable",
			paths: []string{missing, fallback},
			want:  "def456",
		},
		{
			name:    "both missing",
			paths:   []string{missing, filepath.Join(dir, "also-missing")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readFirstAvailable(tt.paths...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("readFirstAvailable() error = %v, wantErr %v", err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("readFirstAvailable() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadFirstAvailableJoinsErrors(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first")
	second := filepath.Join(dir, "second")

	_, err := readFirstAvailable(first, second)
	if err == nil {
		t.Fatal("Expected error when every path is missing")
	}

	var fileErr *FileError
	if !errors.As(err, &fileErr) {
		t.Fatalf("joined error should contain FileError, got %v", err)
	}
}

func TestFileThenCommandFileReadable(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "hostid", "31323334\n")

	mock := newMockExecutor()
	r := New().WithExecutor(mock)

	got, err := fileThenCommand(context.Background(), r, path, "kenv", "-q", "smbios.system.uuid")
	if err != nil {
		t.Fatalf("fileThenCommand() error = %v", err)
	}

	if got != "31323334" {
		t.Errorf("fileThenCommand() = %q, want %q", got, "31323334")
	}

	if mock.callCount["kenv"] != 0 {
		t.Errorf("kenv called %d times, want 0 when file is readable", mock.callCount["kenv"])
	}
}

func TestFileThenCommandFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostid")

	mock := newMockExecutor()
	mock.setOutput("kenv", "11112222-3333-4444-5555-666677778888\n")

	r := New().WithExecutor(mock)

	got, err := fileThenCommand(context.Background(), r, path, "kenv", "-q", "smbios.system.uuid")
	if err != nil {
		t.Fatalf("fileThenCommand() error = %v", err)
	}

	if got != "11112222-3333-4444-5555-666677778888" {
		t.Errorf("fileThenCommand() = %q, want kenv output", got)
	}
}

func TestFileThenCommandBothFail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostid")

	mock := newMockExecutor()
	mock.setError("kenv", fmt.Errorf("executable file not found"))

	r := New().WithExecutor(mock)

	_, err := fileThenCommand(context.Background(), r, path, "kenv", "-q", "smbios.system.uuid")
	if err == nil {
		t.Fatal("Expected error when file and command both fail")
	}

	// Both causes must be reachable through the joined error.
	var fileErr *FileError
	if !errors.As(err, &fileErr) {
		t.Errorf("error should contain FileError, got %v", err)
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Errorf("error should contain CommandError, got %v", err)
	}
}

func TestFileThenCommandEmptyOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostid")

	mock := newMockExecutor()
	mock.setOutput("kenv", "")

	r := New().WithExecutor(mock)

	_, err := fileThenCommand(context.Background(), r, path, "kenv", "-q", "smbios.system.uuid")
	if !errors.Is(err, ErrEmptyID) {
		t.Errorf("fileThenCommand() error = %v, want ErrEmptyID in chain", err)
	}
}
