package extract_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0BSoD/summarize/internal/extract"
	"github.com/0x0BSoD/summarize/internal/model"
)

func docxBytes(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractDocxParagraphs(t *testing.T) {
	const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second</w:t></w:r><w:r><w:t xml:space="preserve"> half.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Tabbed</w:t></w:r><w:r><w:tab/><w:t>value</w:t></w:r></w:p>
  </w:body>
</w:document>`

	doc, err := extract.Extract(model.SourceFile{
		Path: "letter.docx",
		Kind: model.KindWordDoc,
		Raw:  docxBytes(t, documentXML),
	})
	require.NoError(t, err)
	assert.Equal(t, "First paragraph.\n\nSecond half.\n\nTabbed\tvalue", doc.Text)
}

func TestExtractDocxEmptyDocument(t *testing.T) {
	const documentXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p></w:p></w:body>
</w:document>`

	_, err := extract.Extract(model.SourceFile{
		Path: "blank.docx",
		Kind: model.KindWordDoc,
		Raw:  docxBytes(t, documentXML),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, extract.ErrExtractionFailed)
}

func TestExtractDocxNotAZip(t *testing.T) {
	_, err := extract.Extract(model.SourceFile{
		Path: "broken.docx",
		Kind: model.KindWordDoc,
		Raw:  []byte("this is not a zip container"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, extract.ErrExtractionFailed)
}
