// Package extract resolves a local file and turns its contents into plain text. Dispatch is a closed switch over the detected file kind; each kind has one extraction function.
package extract

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/0x0BSoD/summarize/internal/model"
)

var (
	// ErrUnsupportedFormat marks content that is not text and has no dedicated extractor.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrExtractionFailed marks a recognized format that yielded no usable text.
	ErrExtractionFailed = errors.New("text extraction failed")
)

// textExtensions lists extensions read verbatim as text. Anything not listed
// here or handled by a dedicated extractor falls back to a text-decode attempt.
var textExtensions = map[string]bool{
	".txt": true, ".md": true, ".markdown": true, ".rst": true, ".log": true,
	".csv": true, ".tsv": true, ".json": true, ".xml": true, ".yaml": true,
	".yml": true, ".ini": true, ".toml": true, ".cfg": true, ".conf": true,
	".go": true, ".py": true, ".js": true, ".ts": true, ".java": true,
	".c": true, ".h": true, ".cpp": true, ".hpp": true, ".cs": true,
	".rs": true, ".rb": true, ".php": true, ".sh": true, ".bash": true,
	".sql": true, ".proto": true, ".css": true, ".tex": true,
}

func DetectKind(path string) model.FileKind {
	switch ext := strings.ToLower(filepath.Ext(path)); {
	case ext == ".pdf":
		return model.KindPDF
	case ext == ".docx" || ext == ".doc":
		return model.KindWordDoc
	case ext == ".html" || ext == ".htm":
		return model.KindHTML
	case ext == ".rss" || ext == ".atom":
		return model.KindFeed
	case textExtensions[ext]:
		return model.KindText
	}
	return model.KindUnknown
}

// Resolve reads the file at path and tags it with its detected kind.
// Not-found and permission failures stay recognizable through errors.Is.
func Resolve(path string) (model.SourceFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return model.SourceFile{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return model.SourceFile{}, fmt.Errorf("%w: %s is a directory", ErrUnsupportedFormat, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return model.SourceFile{}, fmt.Errorf("read %s: %w", path, err)
	}

	return model.SourceFile{
		Path: path,
		Kind: DetectKind(path),
		Raw:  raw,
	}, nil
}

// Extract produces the plain-text representation of a resolved file.
func Extract(src model.SourceFile) (model.Document, error) {
	var (
		text string
		err  error
	)

	switch src.Kind {
	case model.KindText:
		text, err = decodeText(src.Raw)
	case model.KindHTML:
		text, err = extractHTML(src.Raw)
	case model.KindPDF:
		text, err = extractPDF(src.Raw)
	case model.KindWordDoc:
		if strings.EqualFold(filepath.Ext(src.Path), ".doc") {
			slog.Warn("legacy .doc container, extraction is best-effort; consider converting to .docx", "path", src.Path)
		}
		text, err = extractDocx(src.Raw)
	case model.KindFeed:
		text, err = extractFeed(src.Raw)
	default:
		text, err = decodeText(src.Raw)
		if err != nil && !errors.Is(err, ErrUnsupportedFormat) {
			err = fmt.Errorf("%w: %s has no text-decodable content", ErrUnsupportedFormat, src.Path)
		}
	}
	if err != nil {
		return model.Document{}, err
	}

	if strings.TrimSpace(text) == "" {
		return model.Document{}, fmt.Errorf("%w: %s contains no extractable text", ErrExtractionFailed, src.Path)
	}

	return model.Document{Text: text}, nil
}
