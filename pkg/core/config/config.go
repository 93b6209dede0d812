// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the main configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	Knowledge  KnowledgeConfig  `yaml:"knowledge"`
	Extraction ExtractionConfig `yaml:"extraction"`
	Simplifier SimplifierConfig `yaml:"simplifier"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host              string        `yaml:"host"`
	Port              int           `yaml:"port"`
	Timeout           time.Duration `yaml:"timeout"`
	MaxUploadBytes    int64         `yaml:"max_upload_bytes"`
	DocumentRateLimit float64       `yaml:"document_rate_limit"` // requests per second, 0 disables
	DocumentBurst     int           `yaml:"document_burst"`
}

// LoggingConfig contains logger configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "text"
	Debug  bool   `yaml:"debug"`
}

// KnowledgeConfig points at an alternate knowledge table file.
// An empty path selects the embedded defaults.
type KnowledgeConfig struct {
	Path string `yaml:"path"`
}

// ExtractionConfig selects the PDF decoding strategy
type ExtractionConfig struct {
	PDFStrategy string    `yaml:"pdf_strategy"` // "text" (default) or "ocr"
	OCR         OCRConfig `yaml:"ocr"`
}

// OCRConfig configures the tesseract based PDF decoder
type OCRConfig struct {
	Language string `yaml:"language"` // e.g. "eng"
	DPI      int    `yaml:"dpi"`
}

// SimplifierConfig selects and configures the text simplifier
type SimplifierConfig struct {
	Type      string `yaml:"type"` // "sentences" (default) or "model"
	Endpoint  string `yaml:"endpoint"`
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	ChunkSize int    `yaml:"chunk_size"`
	MinTokens int    `yaml:"min_tokens"`
	MaxTokens int    `yaml:"max_tokens"`
}

// Load loads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, then applies environment overrides and defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns default configuration
func Default() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			Timeout:        60 * time.Second,
			MaxUploadBytes: 10 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Extraction: ExtractionConfig{
			PDFStrategy: "text",
		},
		Simplifier: SimplifierConfig{
			Type: "sentences",
		},
	}
	applyDefaults(cfg)
	return cfg
}

// FromEnv returns the defaults with environment overrides applied.
func FromEnv() (*Config, error) {
	cfg := Default()
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, cfg.Validate()
}

// Validate reports configuration values that cannot work.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be positive")
	}
	if c.Server.DocumentRateLimit < 0 {
		return fmt.Errorf("server.document_rate_limit must not be negative")
	}
	if c.Simplifier.MinTokens > c.Simplifier.MaxTokens {
		return fmt.Errorf("simplifier.min_tokens (%d) exceeds max_tokens (%d)", c.Simplifier.MinTokens, c.Simplifier.MaxTokens)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("LEGALEASE_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid LEGALEASE_DEBUG %q: %w", v, err)
		}
		cfg.Logging.Debug = debug
	}
	if v := os.Getenv("LEGALEASE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LEGALEASE_MAX_UPLOAD_MB"); v != "" {
		mb, err := strconv.Atoi(v)
		if err != nil || mb <= 0 {
			return fmt.Errorf("invalid LEGALEASE_MAX_UPLOAD_MB %q", v)
		}
		cfg.Server.MaxUploadBytes = int64(mb) << 20
	}
	if v := os.Getenv("LEGALEASE_KNOWLEDGE_PATH"); v != "" {
		cfg.Knowledge.Path = v
	}

	// Model simplifier credentials
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Simplifier.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_ENDPOINT"); v != "" {
		cfg.Simplifier.Endpoint = v
	}
	return nil
}

func applyDefaults(cfg *Config) {
	// Debug mode mirrors a development run: verbose, human-readable logs.
	if cfg.Logging.Debug {
		cfg.Logging.Level = "debug"
		cfg.Logging.Format = "text"
	}
	cfg.Extraction.PDFStrategy = strings.ToLower(cfg.Extraction.PDFStrategy)
	if cfg.Extraction.PDFStrategy == "" {
		cfg.Extraction.PDFStrategy = "text"
	}
	if cfg.Extraction.OCR.Language == "" {
		cfg.Extraction.OCR.Language = "eng"
	}
	if cfg.Extraction.OCR.DPI == 0 {
		cfg.Extraction.OCR.DPI = 300
	}

	cfg.Simplifier.Type = strings.ToLower(cfg.Simplifier.Type)
	if cfg.Simplifier.Type == "" {
		cfg.Simplifier.Type = "sentences"
	}
	if cfg.Simplifier.Model == "" {
		cfg.Simplifier.Model = "gpt-4o-mini"
	}
	if cfg.Simplifier.ChunkSize == 0 {
		cfg.Simplifier.ChunkSize = 500
	}
	if cfg.Simplifier.MinTokens == 0 {
		cfg.Simplifier.MinTokens = 30
	}
	if cfg.Simplifier.MaxTokens == 0 {
		cfg.Simplifier.MaxTokens = 100
	}
	if cfg.Server.DocumentBurst <= 0 {
		cfg.Server.DocumentBurst = 5
	}
}

// SimplifierParams flattens the simplifier section for the strategy registry.
func (c *Config) SimplifierParams() map[string]string {
	return map[string]string{
		"endpoint":   c.Simplifier.Endpoint,
		"api_key":    c.Simplifier.APIKey,
		"model":      c.Simplifier.Model,
		"chunk_size": strconv.Itoa(c.Simplifier.ChunkSize),
		"min_tokens": strconv.Itoa(c.Simplifier.MinTokens),
		"max_tokens": strconv.Itoa(c.Simplifier.MaxTokens),
	}
}

// OCRParams flattens the OCR section for the strategy registry.
func (c *Config) OCRParams() map[string]string {
	return map[string]string{
		"language": c.Extraction.OCR.Language,
		"dpi":      strconv.Itoa(c.Extraction.OCR.DPI),
	}
}
