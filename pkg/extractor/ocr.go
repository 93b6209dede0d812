// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// OCRDecoder reads scanned PDFs: every page is rasterised with pdftoppm
// (Poppler) and run through the tesseract CLI, and the page texts are
// concatenated in page order.
type OCRDecoder struct {
	Language string
	DPI      int

	rasterizer string
	recognizer string
}

// NewOCRDecoder locates the pdftoppm and tesseract binaries on PATH.
func NewOCRDecoder(language string, dpi int) (*OCRDecoder, error) {
	rasterizer, err := exec.LookPath("pdftoppm")
	if err != nil {
		return nil, fmt.Errorf("ocr: pdftoppm not available: %w", err)
	}
	recognizer, err := exec.LookPath("tesseract")
	if err != nil {
		return nil, fmt.Errorf("ocr: tesseract not available: %w", err)
	}
	if language == "" {
		language = "eng"
	}
	if dpi <= 0 {
		dpi = 300
	}
	return &OCRDecoder{
		Language:   language,
		DPI:        dpi,
		rasterizer: rasterizer,
		recognizer: recognizer,
	}, nil
}

// Decode implements Decoder.
func (d *OCRDecoder) Decode(ctx context.Context, content []byte) (string, error) {
	dir, err := os.MkdirTemp("", "legalease-ocr-*")
	if err != nil {
		return "", fmt.Errorf("ocr: temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "input.pdf")
	if err := os.WriteFile(input, content, 0o600); err != nil {
		return "", fmt.Errorf("ocr: write input: %w", err)
	}

	prefix := filepath.Join(dir, "page")
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, d.rasterizer, "-png", "-r", strconv.Itoa(d.DPI), input, prefix)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		// pdftoppm exits non-zero on unreadable PDFs
		return "", parseError("pdf", fmt.Errorf("rasterise: %v: %s", err, strings.TrimSpace(stderr.String())))
	}

	images, err := filepath.Glob(prefix + "*.png")
	if err != nil {
		return "", fmt.Errorf("ocr: list page images: %w", err)
	}
	sortPageImages(images)

	var sb strings.Builder
	for _, img := range images {
		var out bytes.Buffer
		cmd := exec.CommandContext(ctx, d.recognizer, img, "stdout", "-l", d.Language)
		cmd.Stdout = &out
		if err := cmd.Run(); err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			return "", fmt.Errorf("ocr: recognise %s: %w", filepath.Base(img), err)
		}
		sb.Write(out.Bytes())
	}
	return sb.String(), nil
}

var pageNumberRe = regexp.MustCompile(`(\d+)\.png$`)

// sortPageImages orders pdftoppm output (page-1.png, page-02.png, ...) by
// page number rather than lexically.
func sortPageImages(files []string) {
	num := func(path string) int {
		m := pageNumberRe.FindStringSubmatch(filepath.Base(path))
		if len(m) < 2 {
			return 0
		}
		n, _ := strconv.Atoi(m[1])
		return n
	}
	sort.SliceStable(files, func(i, j int) bool {
		return num(files[i]) < num(files[j])
	})
}
