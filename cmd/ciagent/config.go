package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/ciagent"
	"github.com/fwojciec/ciagent/crawl"
	"github.com/fwojciec/ciagent/gemini"
	cihttp "github.com/fwojciec/ciagent/http"
	"github.com/fwojciec/ciagent/knowledge"
	"gopkg.in/yaml.v3"
)

// Config holds tunables read from the optional YAML config file.
type Config struct {
	AnswerModel         string  `yaml:"answer_model"`
	EmbeddingModel      string  `yaml:"embedding_model"`
	EmbeddingDimensions int     `yaml:"embedding_dimensions"`
	MaxOutputTokens     int     `yaml:"max_output_tokens"`
	Temperature         float64 `yaml:"temperature"`

	ChunkSize        int `yaml:"chunk_size"`
	ChunkOverlap     int `yaml:"chunk_overlap"`
	EmbedBatchSize   int `yaml:"embed_batch_size"`
	EmbedConcurrency int `yaml:"embed_concurrency"`
	TopK             int `yaml:"top_k"`

	CrawlDelay             time.Duration `yaml:"crawl_delay"`
	FetchTimeout           time.Duration `yaml:"fetch_timeout"`
	UserAgent              string        `yaml:"user_agent"`
	ExcludeEmptyFromBudget bool          `yaml:"exclude_empty_from_budget"`

	// CountTokens reports corpus token counts after a build using the
	// local Gemini tokenizer.
	CountTokens bool `yaml:"count_tokens"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		AnswerModel:      gemini.DefaultAnswerModel,
		EmbeddingModel:   gemini.DefaultEmbeddingModel,
		MaxOutputTokens:  gemini.DefaultMaxOutputTokens,
		Temperature:      gemini.DefaultTemperature,
		ChunkSize:        ciagent.DefaultChunkSize,
		ChunkOverlap:     ciagent.DefaultChunkOverlap,
		EmbedBatchSize:   knowledge.DefaultBatchSize,
		EmbedConcurrency: 1,
		TopK:             ciagent.DefaultTopK,
		CrawlDelay:       time.Duration(float64(time.Second) / crawl.DefaultRequestsPerSecond),
		FetchTimeout:     cihttp.DefaultFetchTimeout,
		UserAgent:        cihttp.DefaultUserAgent,
		CountTokens:      true,
	}
}

// LoadConfig reads the config file at path over the defaults. A missing
// file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the config contains invalid values.
func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return ciagent.Errorf(ciagent.EINVALID, "config: chunk_size must be positive")
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return ciagent.Errorf(ciagent.EINVALID, "config: chunk_overlap must be between 0 and chunk_size")
	}
	if c.TopK <= 0 {
		return ciagent.Errorf(ciagent.EINVALID, "config: top_k must be positive")
	}
	if c.CrawlDelay < 0 {
		return ciagent.Errorf(ciagent.EINVALID, "config: crawl_delay must not be negative")
	}
	return nil
}

// configDir returns ~/.ciagent, or the working directory if the home
// directory is unknown.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".ciagent")
}

func defaultDBPath() string {
	if path := os.Getenv("CIAGENT_DB"); path != "" {
		return path
	}
	dir := configDir()
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "ciagent.db")
}

func defaultConfigPath() string {
	if path := os.Getenv("CIAGENT_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(configDir(), "config.yaml")
}
