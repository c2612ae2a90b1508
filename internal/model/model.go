// Package model defines the data structures passed through the summarize pipeline: the source file, its extracted text, the request sent to the model API, and the result that comes back.
package model

import "fmt"

// DetailLevel selects how verbose the generated summary should be.
type DetailLevel string

const (
	DetailBrief    DetailLevel = "brief"
	DetailMedium   DetailLevel = "medium"
	DetailDetailed DetailLevel = "detailed"
)

// ParseDetailLevel validates a user-supplied detail level.
func ParseDetailLevel(s string) (DetailLevel, error) {
	switch DetailLevel(s) {
	case DetailBrief, DetailMedium, DetailDetailed:
		return DetailLevel(s), nil
	}
	return "", fmt.Errorf("unknown detail level %q (expected brief, medium or detailed)", s)
}

// FileKind is the closed set of input formats the extractor dispatches on.
type FileKind int

const (
	KindUnknown FileKind = iota
	KindText
	KindHTML
	KindPDF
	KindWordDoc
	KindFeed
)

func (k FileKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindHTML:
		return "html"
	case KindPDF:
		return "pdf"
	case KindWordDoc:
		return "worddoc"
	case KindFeed:
		return "feed"
	}
	return "unknown"
}

type SourceFile struct {
	Path string
	Kind FileKind
	Raw  []byte
}

// Document is the extracted text of a source file.
type Document struct {
	Text string
}

// SummaryRequest is immutable once built and sent exactly once.
type SummaryRequest struct {
	Instruction string
	Text        string
	Model       string
}

type SummaryResult struct {
	Text string
}
