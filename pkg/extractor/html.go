// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"bytes"
	"context"
	"strings"

	"golang.org/x/net/html"
)

// decodeHTML reads a saved web page, such as a published judgment or a court
// notice, and returns its readable text with one space between text nodes.
// Script, style, noscript and template content never reaches the result.
func decodeHTML(_ context.Context, content []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return "", parseError("html", err)
	}

	var sb strings.Builder
	visibleText(doc, &sb)
	return strings.TrimSpace(sb.String()), nil
}

func visibleText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		}
	}

	if n.Type == html.TextNode {
		text := strings.TrimSpace(n.Data)
		if text != "" {
			if sb.Len() > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(text)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visibleText(c, sb)
	}
}
