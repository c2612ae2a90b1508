package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// extractDocx reads paragraph text out of the OOXML container. Only
// word/document.xml is consulted; headers, footers and embedded objects
// are ignored.
func extractDocx(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("%w: open document container: %v", ErrExtractionFailed, err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("%w: container has no word/document.xml", ErrExtractionFailed)
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open word/document.xml: %v", ErrExtractionFailed, err)
	}
	defer rc.Close()

	paragraphs, err := documentParagraphs(rc)
	if err != nil {
		return "", err
	}

	return strings.Join(paragraphs, "\n\n"), nil
}

// documentParagraphs walks the WordprocessingML token stream, collecting the
// character data inside w:t runs and closing a paragraph on each </w:p>.
func documentParagraphs(r io.Reader) ([]string, error) {
	var (
		decoder    = xml.NewDecoder(r)
		paragraphs []string
		current    strings.Builder
		inRunText  bool
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parse word/document.xml: %v", ErrExtractionFailed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inRunText = true
			case "tab":
				current.WriteByte('\t')
			case "br", "cr":
				current.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRunText = false
			case "p":
				if p := current.String(); strings.TrimSpace(p) != "" {
					paragraphs = append(paragraphs, p)
				}
				current.Reset()
			}
		case xml.CharData:
			if inRunText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}
