package ingestion

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxUploadBytes is the default size limit for a single input document (2 MB).
const MaxUploadBytes int64 = 2 << 20

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// Format is the detected format of an input document.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// Document is a cleaned input ready for analysis.
type Document struct {
	Source string
	Format Format
	Text   string
	Bytes  int
}

// FileTooLargeError is returned when an input exceeds the size limit.
type FileTooLargeError struct {
	Source string
	Size   int64
	Limit  int64
}

func (e *FileTooLargeError) Error() string {
	if e.Size > 0 {
		return fmt.Sprintf("%s is too large: %d bytes exceeds the %d byte limit", e.Source, e.Size, e.Limit)
	}
	return fmt.Sprintf("%s is too large: exceeds the %d byte limit", e.Source, e.Limit)
}

// IsFileTooLarge reports whether err is or wraps a *FileTooLargeError.
func IsFileTooLarge(err error) bool {
	var tooLarge *FileTooLargeError
	return errors.As(err, &tooLarge)
}

// stdin is replaced in tests.
var stdin io.Reader = os.Stdin

// ReadFile reads a document from disk, or from stdin when path is "-".
// Files ending in .html or .htm are converted to text.
func ReadFile(path string, maxBytes int64) (*Document, error) {
	if path == StdinPath {
		return ReadReader(stdin, "stdin", maxBytes)
	}
	if maxBytes <= 0 {
		maxBytes = MaxUploadBytes
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > maxBytes {
		return nil, &FileTooLargeError{Source: path, Size: info.Size(), Limit: maxBytes}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	content, err := readLimited(f, path, maxBytes)
	if err != nil {
		return nil, err
	}

	format := FormatText
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		format = FormatHTML
	}
	return newDocument(path, format, content)
}

// ReadReader reads a document from r with the same size limit as ReadFile.
// HTML is detected by sniffing the first bytes.
func ReadReader(r io.Reader, source string, maxBytes int64) (*Document, error) {
	if maxBytes <= 0 {
		maxBytes = MaxUploadBytes
	}
	content, err := readLimited(r, source, maxBytes)
	if err != nil {
		return nil, err
	}
	format := FormatText
	if looksLikeHTML(content) {
		format = FormatHTML
	}
	return newDocument(source, format, content)
}

// readLimited reads at most maxBytes, failing if the input holds more.
func readLimited(r io.Reader, source string, maxBytes int64) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	if int64(len(content)) > maxBytes {
		return nil, &FileTooLargeError{Source: source, Limit: maxBytes}
	}
	return content, nil
}

func newDocument(source string, format Format, content []byte) (*Document, error) {
	text := string(content)
	if format == FormatHTML {
		converted, err := HTMLToText(text)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s: %w", source, err)
		}
		text = converted
	} else {
		text = CleanText(text)
	}
	return &Document{
		Source: source,
		Format: format,
		Text:   text,
		Bytes:  len(content),
	}, nil
}
