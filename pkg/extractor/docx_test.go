// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wordNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`

// buildDOCX creates a minimal Word package in memory. An empty body omits
// word/document.xml entirely.
func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()
	if body == "" {
		return buildDOCXPart(t, "")
	}
	return buildDOCXPart(t, `<?xml version="1.0" encoding="UTF-8"?><w:document `+wordNS+`><w:body>`+body+`</w:body></w:document>`)
}

// buildDOCXPart stores part verbatim as word/document.xml; an empty part is
// left out of the package.
func buildDOCXPart(t *testing.T, part string) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	ct, err := w.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = ct.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`))
	require.NoError(t, err)

	if part != "" {
		doc, err := w.Create("word/document.xml")
		require.NoError(t, err)
		_, err = doc.Write([]byte(part))
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecodeDOCX_ParagraphsJoinedByNewline(t *testing.T) {
	content := buildDOCX(t,
		`<w:p><w:r><w:t>Summons issued.</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t xml:space="preserve">The defendant </w:t></w:r><w:r><w:t>appeared.</w:t></w:r></w:p>`+
			`<w:p/>`+
			`<w:p><w:r><w:t>Verdict reserved.</w:t></w:r></w:p>`+
			`<w:sectPr/>`)

	got, err := New().Extract(context.Background(), "order.docx", content)
	require.NoError(t, err)
	assert.Equal(t, "Summons issued.\nThe defendant appeared.\n\nVerdict reserved.", got)
}

func TestDecodeDOCX_TabsAndBreaks(t *testing.T) {
	content := buildDOCX(t,
		`<w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/></w:tabs></w:pPr>`+
			`<w:r><w:t>Case</w:t><w:tab/><w:t>No. 42</w:t><w:br/><w:t>Filed</w:t></w:r></w:p>`)

	got, err := decodeDOCX(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, "Case\tNo. 42\nFiled", got)
}

func TestDecodeDOCX_SkipsTableParagraphs(t *testing.T) {
	content := buildDOCX(t,
		`<w:p><w:r><w:t>Before</w:t></w:r></w:p>`+
			`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`+
			`<w:p><w:r><w:t>After</w:t></w:r></w:p>`)

	got, err := decodeDOCX(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, "Before\nAfter", got)
}

func TestDecodeDOCX_IgnoresDeletedText(t *testing.T) {
	content := buildDOCX(t,
		`<w:p><w:del><w:r><w:delText>struck</w:delText></w:r></w:del><w:r><w:t>kept</w:t></w:r></w:p>`)

	got, err := decodeDOCX(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, "kept", got)
}

func TestDecodeDOCX_SkipsTextBoxes(t *testing.T) {
	const mcNS = `xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006"`
	textBox := `<w:txbxContent><w:p><w:r><w:t>BOX</w:t></w:r></w:p></w:txbxContent>`
	content := buildDOCX(t,
		`<w:p><w:r><w:t>Body</w:t></w:r>`+
			`<w:r><mc:AlternateContent `+mcNS+`>`+
			`<mc:Choice Requires="wps"><w:drawing><wps:wsp><wps:txbx>`+textBox+`</wps:txbx></wps:wsp></w:drawing></mc:Choice>`+
			`<mc:Fallback><w:pict><v:shape><v:textbox>`+textBox+`</v:textbox></v:shape></w:pict></mc:Fallback>`+
			`</mc:AlternateContent></w:r></w:p>`)

	got, err := decodeDOCX(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, "Body", got)
}

func TestDecodeDOCX_KeepsHyperlinkRuns(t *testing.T) {
	content := buildDOCX(t,
		`<w:p><w:r><w:t xml:space="preserve">See </w:t></w:r>`+
			`<w:hyperlink r:id="rId4"><w:r><w:t>Article 21</w:t></w:r></w:hyperlink>`+
			`<w:r><w:t>.</w:t></w:r></w:p>`)

	got, err := decodeDOCX(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, "See Article 21.", got)
}

func TestDecodeDOCX_Malformed(t *testing.T) {
	tests := map[string][]byte{
		"not a zip":        []byte("PK? definitely not a zip archive"),
		"missing document": buildDOCX(t, ""),
		"broken xml":       buildDOCX(t, `<w:p><w:r><w:t>unterminated`),
		"empty":            {},
		"plain words":      buildDOCXPart(t, "just some plain words, not xml"),
		"foreign root":     buildDOCXPart(t, `<html><body><p>hello</p></body></html>`),
		"no body":          buildDOCXPart(t, `<w:document `+wordNS+`/>`),
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New().Extract(context.Background(), "bad.docx", content)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDocumentParse), "got %v", err)
			var pe *DocumentParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "docx", pe.Format)
		})
	}
}
