package extract

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/axgle/mahonia"
	"github.com/gogs/chardet"
)

// decodeText decodes raw bytes as text. Valid UTF-8 passes through unmodified;
// anything else goes through charset detection and conversion. A NUL byte
// marks the content as binary before any decode attempt.
func decodeText(raw []byte) (string, error) {
	if bytes.IndexByte(raw, 0) >= 0 {
		return "", fmt.Errorf("%w: content contains binary data", ErrUnsupportedFormat)
	}

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	result, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil {
		return "", fmt.Errorf("%w: charset detection: %v", ErrExtractionFailed, err)
	}

	decoder := mahonia.NewDecoder(strings.ToLower(result.Charset))
	if decoder == nil {
		return "", fmt.Errorf("%w: no decoder for charset %q", ErrExtractionFailed, result.Charset)
	}

	decoded := decoder.ConvertString(string(raw))
	if !utf8.ValidString(decoded) {
		return "", fmt.Errorf("%w: content is not decodable as %s", ErrExtractionFailed, result.Charset)
	}

	return decoded, nil
}
