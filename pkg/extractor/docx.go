// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

const (
	docxMainPart = "word/document.xml"

	// maxDocxMainPart bounds the decompressed size of the main document part.
	maxDocxMainPart = 64 << 20
)

// decodeDOCX returns the text of each body paragraph of a Word document, in
// document order, separated by newlines. Only runs placed directly in a
// paragraph or in one of its hyperlinks count, so table cells, text boxes and
// drawing fallbacks do not leak into the result.
func decodeDOCX(_ context.Context, content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", parseError("docx", err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == docxMainPart {
			part = f
			break
		}
	}
	if part == nil {
		return "", parseError("docx", fmt.Errorf("%s not found", docxMainPart))
	}
	if part.UncompressedSize64 > maxDocxMainPart {
		return "", parseError("docx", fmt.Errorf("%s is %d bytes, limit %d", docxMainPart, part.UncompressedSize64, maxDocxMainPart))
	}

	rc, err := part.Open()
	if err != nil {
		return "", parseError("docx", err)
	}
	defer rc.Close()

	paragraphs, err := bodyParagraphs(io.LimitReader(rc, maxDocxMainPart))
	if err != nil {
		return "", parseError("docx", err)
	}
	return strings.Join(paragraphs, "\n"), nil
}

// runContent lists the element paths, relative to a body w:p, whose content
// belongs to the paragraph text.
var runContent = [][]string{
	{"r"},
	{"hyperlink", "r"},
}

// inRun reports whether rel, the open elements below a paragraph, ends in an
// element of kind leaf sitting directly in a paragraph run.
func inRun(rel []string, leaf ...string) bool {
	if len(rel) == 0 {
		return false
	}
	if !slices.Contains(leaf, rel[len(rel)-1]) {
		return false
	}
	path := rel[:len(rel)-1]
	for _, want := range runContent {
		if slices.Equal(path, want) {
			return true
		}
	}
	return false
}

// bodyParagraphs walks WordprocessingML and collects the text of every w:p
// that is a direct child of w:body. Within a paragraph, w:t text is kept,
// w:tab becomes a tab and w:br / w:cr become newlines. A part without a
// w:document root holding a w:body is rejected.
func bodyParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		open       []string // local names of the enclosing elements
		cur        strings.Builder
		paraDepth  int // len(open) at the current w:p, 0 outside one
		sawBody    bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			open = append(open, name)
			switch {
			case len(open) == 1 && name != "document":
				return nil, fmt.Errorf("root element is %q, want document", name)
			case len(open) == 2 && name == "body":
				sawBody = true
			case paraDepth == 0 && name == "p" && len(open) == 3 && open[1] == "body":
				paraDepth = len(open)
				cur.Reset()
			case paraDepth == 0:
			case inRun(open[paraDepth:], "tab"):
				cur.WriteByte('\t')
			case inRun(open[paraDepth:], "br", "cr"):
				cur.WriteByte('\n')
			}
		case xml.CharData:
			if paraDepth > 0 && inRun(open[paraDepth:], "t") {
				cur.Write(t)
			}
		case xml.EndElement:
			if paraDepth > 0 && len(open) == paraDepth {
				paragraphs = append(paragraphs, cur.String())
				paraDepth = 0
			}
			if len(open) > 0 {
				open = open[:len(open)-1]
			}
		}
	}

	if len(open) != 0 {
		return nil, io.ErrUnexpectedEOF
	}
	if !sawBody {
		return nil, errors.New("no document body")
	}
	return paragraphs, nil
}
