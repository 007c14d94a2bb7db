package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"careerdecide/internal/errors"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestExtractTextPlainFile(t *testing.T) {
	path := writeTempFile(t, "resume.txt", "Built services with Python and Docker.")

	text, err := New(1024, nil).ExtractText(path)
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if text != "Built services with Python and Docker." {
		t.Errorf("Expected verbatim content, got %q", text)
	}
}

func TestExtractTextDocumentPlaceholder(t *testing.T) {
	path := writeTempFile(t, "resume.pdf", "%PDF-1.4 binary goo")

	text, err := New(1024, nil).ExtractText(path)
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if !strings.Contains(text, "resume.pdf") {
		t.Errorf("Placeholder must name the file, got %q", text)
	}
	if !strings.Contains(text, "paste the text manually") {
		t.Errorf("Placeholder must instruct manual paste, got %q", text)
	}
}

func TestExtractTextUnsupportedType(t *testing.T) {
	path := writeTempFile(t, "resume.exe", "MZ")

	_, err := New(1024, nil).ExtractText(path)
	if err == nil {
		t.Fatal("Expected error for unsupported file type")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeUnsupportedFile {
		t.Errorf("Expected UNSUPPORTED_FILE_TYPE, got %v", err)
	}
}

func TestExtractTextSizeLimit(t *testing.T) {
	path := writeTempFile(t, "resume.txt", strings.Repeat("x", 100))

	_, err := New(10, nil).ExtractText(path)
	if err == nil {
		t.Fatal("Expected error for oversized file")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeFileTooLarge {
		t.Errorf("Expected FILE_TOO_LARGE, got %v", err)
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	_, err := New(1024, nil).ExtractText(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}
