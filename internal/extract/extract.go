// Package extract is the text-extraction boundary in front of the
// evaluation engine. Plain-text documents are decoded; PDF and Word
// documents are accepted but yield a placeholder instructing the user
// to paste text manually. The engine treats whatever string arrives
// identically regardless of origin.
package extract

import (
	"fmt"
	"os"

	"careerdecide/internal/errors"
	"careerdecide/internal/utils"
)

// Extractor turns uploaded files into evaluation input text.
type Extractor struct {
	maxFileSize int64
	logger      *errors.Logger
}

// New creates an extractor enforcing the configured size limit.
func New(maxFileSize int64, logger *errors.Logger) *Extractor {
	return &Extractor{maxFileSize: maxFileSize, logger: logger}
}

// ExtractText returns the text content of a file. Text files are read
// verbatim; PDF/Word documents produce the manual-paste placeholder;
// anything else is rejected before the engine is ever invoked.
func (e *Extractor) ExtractText(filename string) (string, error) {
	if err := utils.ValidateInputFile(filename); err != nil {
		return "", errors.NewIOError(errors.ErrCodeFileNotFound,
			fmt.Sprintf("Cannot access file: %s", filename), err)
	}

	info, err := os.Stat(filename)
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot stat file: %s", filename), err)
	}
	if e.maxFileSize > 0 && info.Size() > e.maxFileSize {
		return "", errors.NewValidationError(errors.ErrCodeFileTooLarge,
			fmt.Sprintf("File %s exceeds the %s limit", filename, utils.FormatFileSize(e.maxFileSize)), nil).
			WithContext("file_size", utils.FormatFileSize(info.Size()))
	}

	switch {
	case utils.IsTextFile(filename):
		content, err := os.ReadFile(filename)
		if err != nil {
			return "", errors.NewIOError(errors.ErrCodeFileNotReadable,
				fmt.Sprintf("Failed to read file: %s", filename), err)
		}
		return string(content), nil

	case utils.IsDocumentFile(filename):
		if e.logger != nil {
			e.logger.Warn("Binary document accepted without parsing", "filename", filename)
		}
		return Placeholder(filename), nil

	default:
		return "", errors.NewValidationError(errors.ErrCodeUnsupportedFile,
			fmt.Sprintf("Unsupported file type: %s (use .txt, .md, .pdf, .doc or .docx)", filename), nil)
	}
}

// Placeholder is the fixed string returned for binary documents.
func Placeholder(filename string) string {
	return fmt.Sprintf("[Uploaded file: %s]\n\nPDF and Word content is not parsed. Please paste the text manually.", filename)
}
