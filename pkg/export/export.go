// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

// Package export renders simplified text as downloadable files.
package export

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Format is a download format.
type Format string

const (
	FormatText Format = "txt"
	FormatPDF  Format = "pdf"
)

// ParseFormat maps a user supplied name to a Format. Empty selects text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// File is a rendered download.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// Render produces the download for text in format f.
func Render(f Format, title, text string) (*File, error) {
	switch f {
	case FormatText:
		return &File{
			Name:        "simplified.txt",
			ContentType: "text/plain; charset=utf-8",
			Content:     []byte(text),
		}, nil
	case FormatPDF:
		content, err := RenderPDF(title, text)
		if err != nil {
			return nil, err
		}
		return &File{
			Name:        "simplified.pdf",
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", f)
	}
}

// RenderPDF lays text out on A4 pages under an optional title. Blank lines
// become paragraph gaps. Characters outside cp1252 are replaced by the core
// font translator.
func RenderPDF(title, text string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "", 11)
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			pdf.Ln(5)
			continue
		}
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read export text: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
