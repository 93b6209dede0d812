// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"context"
	"strings"
)

// decodeText decodes content as UTF-8, dropping bytes that are not valid UTF-8.
func decodeText(_ context.Context, content []byte) (string, error) {
	return strings.ToValidUTF8(string(content), ""), nil
}
