// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

// Package extractor converts uploaded file bytes into plain text, choosing a
// decoder by file extension.
package extractor

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/leseb/legalease/pkg/provider"
)

// Unsupported is returned in place of text for extensions without a decoder.
const Unsupported = "Unsupported file type."

// Decoder turns raw document bytes into text.
type Decoder interface {
	Decode(ctx context.Context, content []byte) (string, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(ctx context.Context, content []byte) (string, error)

// Decode implements Decoder.
func (f DecoderFunc) Decode(ctx context.Context, content []byte) (string, error) {
	return f(ctx, content)
}

// PDFStrategies holds the interchangeable PDF decoders:
//
//	text  reads the embedded text layer (default)
//	ocr   rasterises pages and runs tesseract, for scanned documents
var PDFStrategies = provider.NewRegistry[Decoder]("pdf_decoder")

func init() {
	PDFStrategies.Register("text", func(_ context.Context, _ map[string]string) (Decoder, error) {
		return DecoderFunc(decodePDF), nil
	})
	PDFStrategies.Register("ocr", func(_ context.Context, params map[string]string) (Decoder, error) {
		dpi, _ := strconv.Atoi(params["dpi"])
		d, err := NewOCRDecoder(params["language"], dpi)
		if err != nil {
			return nil, err
		}
		return d, nil
	})
}

// Extractor dispatches on file extension. It is safe for concurrent use.
type Extractor struct {
	decoders map[string]Decoder
}

// Option customises an Extractor.
type Option func(*Extractor)

// WithDecoder registers d for ext (".pdf", ".docx", ...), replacing any
// existing decoder for that extension.
func WithDecoder(ext string, d Decoder) Option {
	return func(e *Extractor) {
		e.decoders[strings.ToLower(ext)] = d
	}
}

// New returns an Extractor handling .txt, .docx, .pdf, .html and .htm.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		decoders: map[string]Decoder{
			".txt":  DecoderFunc(decodeText),
			".docx": DecoderFunc(decodeDOCX),
			".pdf":  DecoderFunc(decodePDF),
			".html": DecoderFunc(decodeHTML),
			".htm":  DecoderFunc(decodeHTML),
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the text of content, treating filename only as a source of
// the extension. Unknown extensions yield Unsupported and a nil error.
// Malformed documents yield an error matching ErrDocumentParse.
func (e *Extractor) Extract(ctx context.Context, filename string, content []byte) (string, error) {
	d, ok := e.decoders[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return Unsupported, nil
	}

	text, err := d.Decode(ctx, content)
	if err != nil {
		return "", fmt.Errorf("extract %q: %w", filepath.Base(filename), err)
	}
	return text, nil
}

// Supports reports whether filename has a registered decoder.
func (e *Extractor) Supports(filename string) bool {
	_, ok := e.decoders[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// Extensions lists the handled extensions in sorted order.
func (e *Extractor) Extensions() []string {
	exts := make([]string, 0, len(e.decoders))
	for ext := range e.decoders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
