package extract

import (
	"bytes"
	"regexp"
	"strings"

	readability "github.com/go-shiori/go-readability"
)

var redundantNewLines = regexp.MustCompile(`\n{3,}`)

// extractHTML pulls the readable article text out of an HTML document.
// Documents readability cannot make sense of (fragments, navigation-only
// pages) fall back to a plain-text decode of the markup.
func extractHTML(raw []byte) (string, error) {
	article, err := readability.FromReader(bytes.NewReader(raw), nil)
	if err != nil || strings.TrimSpace(article.TextContent) == "" {
		return decodeText(raw)
	}

	return cleanupText(article.TextContent), nil
}

func cleanupText(text string) string {
	return redundantNewLines.ReplaceAllString(strings.TrimSpace(text), "\n")
}
