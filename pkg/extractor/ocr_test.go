// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTools installs shell stand-ins for pdftoppm and tesseract on PATH.
func fakeTools(t *testing.T, rasterizer string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts required")
	}
	dir := t.TempDir()
	tesseract := "#!/bin/sh\necho \"text of ${1##*/}\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pdftoppm"), []byte(rasterizer), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tesseract"), []byte(tesseract), 0o755))
	t.Setenv("PATH", dir)
}

func TestOCRDecoder_PageOrder(t *testing.T) {
	// pdftoppm's last argument is the output prefix
	fakeTools(t, "#!/bin/sh\nfor last; do :; done\nprintf x > \"$last-10.png\"\nprintf x > \"$last-2.png\"\nprintf x > \"$last-1.png\"\n")

	d, err := NewOCRDecoder("", 0)
	require.NoError(t, err)
	assert.Equal(t, "eng", d.Language)
	assert.Equal(t, 300, d.DPI)

	got, err := d.Decode(context.Background(), []byte("%PDF-1.4 scanned"))
	require.NoError(t, err)
	assert.Equal(t, "text of page-1.png\ntext of page-2.png\ntext of page-10.png\n", got)
}

func TestOCRDecoder_RasteriseFailure(t *testing.T) {
	fakeTools(t, "#!/bin/sh\necho 'Syntax Error: Couldn'\\''t find trailer dictionary' >&2\nexit 1\n")

	d, err := NewOCRDecoder("eng", 150)
	require.NoError(t, err)

	_, err = d.Decode(context.Background(), []byte("garbage"))
	assert.ErrorIs(t, err, ErrDocumentParse)
}

func TestOCRDecoder_MissingBinaries(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := NewOCRDecoder("eng", 300)
	assert.Error(t, err)

	_, err = PDFStrategies.Build(context.Background(), "ocr", map[string]string{"dpi": "200"})
	assert.Error(t, err)
}

func TestSortPageImages(t *testing.T) {
	files := []string{"/t/page-11.png", "/t/page-02.png", "/t/page-1.png"}
	sortPageImages(files)
	assert.Equal(t, []string{"/t/page-1.png", "/t/page-02.png", "/t/page-11.png"}, files)
}
