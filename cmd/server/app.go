// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/leseb/legalease/pkg/core/config"
	"github.com/leseb/legalease/pkg/extractor"
	"github.com/leseb/legalease/pkg/knowledge"
	"github.com/leseb/legalease/pkg/observability/logging"
	"github.com/leseb/legalease/pkg/simplifier"
)

// app bundles the components every subcommand is built from.
type app struct {
	cfg        *config.Config
	logger     *logging.Logger
	knowledge  *knowledge.Base
	extractor  *extractor.Extractor
	simplifier simplifier.Simplifier
}

// newApp loads configuration and wires the shared components. Logs go to
// logOut so stdio based commands keep stdout clean.
func newApp(cmd *cobra.Command, logOut io.Writer) (*app, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("getting config flag: %w", err)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: logOut,
	})
	return buildApp(cmd.Context(), cfg, logger)
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	// If config file doesn't exist, use defaults
	if errors.Is(err, fs.ErrNotExist) {
		return config.FromEnv()
	}
	return nil, err
}

func buildApp(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*app, error) {
	kb := knowledge.Default()
	if cfg.Knowledge.Path != "" {
		loaded, err := knowledge.LoadFile(cfg.Knowledge.Path)
		if err != nil {
			return nil, err
		}
		kb = loaded
		logger.Info("Loaded knowledge tables", "path", cfg.Knowledge.Path)
	}
	logger.Debug("Knowledge tables ready",
		"terms", kb.Terms(),
		"topics", len(kb.Topics()),
		"court_updates", len(kb.CourtUpdates()))

	pdfDecoder, err := extractor.PDFStrategies.Build(ctx, cfg.Extraction.PDFStrategy, cfg.OCRParams())
	if err != nil {
		return nil, err
	}
	ext := extractor.New(extractor.WithDecoder(".pdf", pdfDecoder))
	logger.Info("Initialized extractor",
		"pdf_strategy", cfg.Extraction.PDFStrategy,
		"extensions", ext.Extensions())

	simp, err := simplifier.Strategies.Build(ctx, cfg.Simplifier.Type, cfg.SimplifierParams())
	if err != nil {
		return nil, err
	}
	logger.Info("Initialized simplifier", "type", cfg.Simplifier.Type)

	return &app{
		cfg:        cfg,
		logger:     logger,
		knowledge:  kb,
		extractor:  ext,
		simplifier: simp,
	}, nil
}
