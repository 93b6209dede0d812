// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package knowledge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Tables(t *testing.T) {
	b := Default()

	assert.Equal(t, 15, b.Terms())

	updates := b.CourtUpdates()
	require.Len(t, updates, 4)
	assert.Equal(t, "Judge entered the courtroom.", updates[0])
	assert.Equal(t, "Defendant's lawyer requested a recess.", updates[3])

	topics := b.Topics()
	require.Len(t, topics, 7)
	assert.Equal(t, "right to equality", topics[0].Keyword)
	assert.Equal(t, "ipc section 498a", topics[6].Keyword)
	assert.True(t, strings.HasPrefix(topics[3].Summary, "🔍 IPC Section 302 – Punishment for Murder:\nWhoever commits murder"))
}

func TestDefine(t *testing.T) {
	b := Default()

	tests := []struct {
		term  string
		want  string
		found bool
	}{
		{"bail", "Temporary release of an accused person awaiting trial, sometimes on monetary conditions.", true},
		{"  Plaintiff ", "The person or party who brings a case against another in a court of law.", true},
		{"SUBPOENA", "A legal document ordering someone to attend court or produce documents.", true},
		{"tort", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			def, ok := b.Define(tt.term)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, def)
		})
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	b := Default()

	updates := b.CourtUpdates()
	updates[0] = "tampered"
	assert.Equal(t, "Judge entered the courtroom.", b.CourtUpdates()[0])

	topics := b.Topics()
	topics[0].Summary = "tampered"
	assert.NotEqual(t, "tampered", b.Topics()[0].Summary)
}

func TestParse_NormalizesKeys(t *testing.T) {
	b, err := Parse([]byte(`
glossary:
  "  Tort ": "A civil wrong."
topics:
  - keyword: "Habeas Corpus"
    summary: "writ"
`))
	require.NoError(t, err)

	def, ok := b.Define("tort")
	assert.True(t, ok)
	assert.Equal(t, "A civil wrong.", def)
	assert.Equal(t, "habeas corpus", b.Topics()[0].Keyword)
	assert.Empty(t, b.CourtUpdates())
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"malformed":         "glossary: [",
		"empty keyword":     "topics:\n  - keyword: \"  \"\n    summary: x\n",
		"duplicate keyword": "topics:\n  - keyword: bail\n    summary: a\n  - keyword: BAIL\n    summary: b\n",
		"duplicate term":    "glossary:\n  Bail: a\n  bail: b\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidTables)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("court_updates: [\"Court adjourned.\"]\n"), 0o600))

	b, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Court adjourned."}, b.CourtUpdates())

	_, err = LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
