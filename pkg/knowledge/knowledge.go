// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

// Package knowledge holds the static legal tables served by the assistant:
// the glossary, the ordered chat topics and the court updates feed.
//
// A Base is built once at start-up and never mutated afterwards, so it can be
// shared by every request without locking. Accessors hand out copies.
package knowledge

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed knowledge.yaml
var defaultTables []byte

// ErrInvalidTables is returned when a table document fails validation.
var ErrInvalidTables = errors.New("invalid knowledge tables")

// Topic pairs a chat keyword with its pre-planned summary.
type Topic struct {
	Keyword string `yaml:"keyword" json:"keyword"`
	Summary string `yaml:"summary" json:"summary"`
}

type document struct {
	Glossary     map[string]string `yaml:"glossary"`
	CourtUpdates []string          `yaml:"court_updates"`
	Topics       []Topic           `yaml:"topics"`
}

// Base is the immutable set of knowledge tables.
type Base struct {
	glossary map[string]string
	topics   []Topic
	updates  []string
}

// Default parses the embedded tables. The embedded document is validated by
// tests, so a failure here is a build defect.
func Default() *Base {
	b, err := Parse(defaultTables)
	if err != nil {
		panic(fmt.Sprintf("knowledge: embedded tables: %v", err))
	}
	return b
}

// LoadFile reads tables from a YAML file.
func LoadFile(path string) (*Base, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open knowledge file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads tables from r.
func Load(r io.Reader) (*Base, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read knowledge tables: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML table document.
func Parse(data []byte) (*Base, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTables, err)
	}

	b := &Base{
		glossary: make(map[string]string, len(doc.Glossary)),
		topics:   make([]Topic, 0, len(doc.Topics)),
		updates:  append([]string(nil), doc.CourtUpdates...),
	}

	for term, def := range doc.Glossary {
		key := Normalize(term)
		if key == "" {
			return nil, fmt.Errorf("%w: empty glossary term", ErrInvalidTables)
		}
		if _, dup := b.glossary[key]; dup {
			return nil, fmt.Errorf("%w: duplicate glossary term %q", ErrInvalidTables, key)
		}
		b.glossary[key] = def
	}

	seen := make(map[string]struct{}, len(doc.Topics))
	for i, t := range doc.Topics {
		kw := Normalize(t.Keyword)
		if kw == "" {
			return nil, fmt.Errorf("%w: topic %d has no keyword", ErrInvalidTables, i)
		}
		if _, dup := seen[kw]; dup {
			return nil, fmt.Errorf("%w: duplicate topic keyword %q", ErrInvalidTables, kw)
		}
		seen[kw] = struct{}{}
		b.topics = append(b.topics, Topic{Keyword: kw, Summary: t.Summary})
	}

	return b, nil
}

// Normalize trims s and lower-cases it with Unicode case rules. Glossary
// terms and topic keywords are stored in this form.
func Normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// Define looks up a glossary term, ignoring case and surrounding space.
func (b *Base) Define(term string) (string, bool) {
	def, ok := b.glossary[Normalize(term)]
	return def, ok
}

// Terms returns the number of glossary entries.
func (b *Base) Terms() int {
	return len(b.glossary)
}

// Topics returns the chat topics in priority order.
func (b *Base) Topics() []Topic {
	return append([]Topic(nil), b.topics...)
}

// CourtUpdates returns the court updates feed in order.
func (b *Base) CourtUpdates() []string {
	return append([]string(nil), b.updates...)
}
