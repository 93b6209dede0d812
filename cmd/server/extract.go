// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leseb/legalease/pkg/export"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Print the text of a .txt, .docx or .pdf file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().Bool("simplify", false, "Print the simplified text instead")
	extractCmd.Flags().StringP("output", "o", "", "Write the result to a file; a .pdf name renders a PDF")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	text, err := a.extractor.Extract(cmd.Context(), args[0], content)
	if err != nil {
		return err
	}

	if simplify, _ := cmd.Flags().GetBool("simplify"); simplify {
		text, err = a.simplifier.Simplify(cmd.Context(), text)
		if err != nil {
			return err
		}
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	format := export.FormatText
	if strings.EqualFold(filepath.Ext(output), ".pdf") {
		format = export.FormatPDF
	}
	file, err := export.Render(format, args[0], text)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, file.Content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	a.logger.Info("Wrote output", "path", output, "format", format, "bytes", len(file.Content))
	return nil
}
