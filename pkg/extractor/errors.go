// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"errors"
	"fmt"
)

// ErrDocumentParse matches every *DocumentParseError via errors.Is.
var ErrDocumentParse = errors.New("document parse error")

// DocumentParseError reports document bytes that could not be decoded in the
// format their extension claims.
type DocumentParseError struct {
	Format string // "docx", "pdf", ...
	Err    error
}

func (e *DocumentParseError) Error() string {
	return fmt.Sprintf("parse %s document: %v", e.Format, e.Err)
}

func (e *DocumentParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrDocumentParse.
func (e *DocumentParseError) Is(target error) bool {
	return target == ErrDocumentParse
}

func parseError(format string, err error) error {
	return &DocumentParseError{Format: format, Err: err}
}
