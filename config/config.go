// Package config provides configuration loading and structs for mitsumori.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/hyperjump/mitsumori/ranking"
)

// Config holds all configuration for the suggestion service.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Suggest   SuggestConfig   `yaml:"suggest"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Interpret InterpretConfig `yaml:"interpret"`
}

// SuggestConfig holds scoring thresholds and ranking knobs.
type SuggestConfig struct {
	DefaultMaxResults     int     `yaml:"default_max_results"`
	KeywordMinScore       float64 `yaml:"keyword_min_score"`
	FuzzyMinRatio         int     `yaml:"fuzzy_min_ratio"`
	FuzzyLimit            int     `yaml:"fuzzy_limit"`
	SemanticMinSimilarity float64 `yaml:"semantic_min_similarity"`
	CapabilityTimeoutMS   int     `yaml:"capability_timeout_ms"`
	PoolSize              int     `yaml:"pool_size"`
	BatchSize             int     `yaml:"batch_size"`
}

// EmbeddingConfig holds embedding provider settings. Token falls back to
// the OPENAI_API_KEY environment variable when left empty.
type EmbeddingConfig struct {
	Provider   string `yaml:"provider"`
	Host       string `yaml:"host"`
	Model      string `yaml:"model"`
	Token      string `yaml:"token"`
	Dimensions int    `yaml:"dimensions"`
	CacheSize  int    `yaml:"cache_size"`
}

// InterpretConfig selects the query interpretation strategy.
type InterpretConfig struct {
	Strategy string `yaml:"strategy"`
	Host     string `yaml:"host"`
	Model    string `yaml:"model"`
}

// Load reads and parses the config file at path and applies defaults.
// A .env file next to the working directory is loaded when present so
// that credentials stay out of the yaml file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// RankingConfig maps the yaml knobs onto the scorer configuration,
// keeping built-in values for anything left unset.
func (c *Config) RankingConfig() *ranking.Config {
	rc := ranking.DefaultConfig()
	if c.Suggest.DefaultMaxResults > 0 {
		rc.DefaultMaxResults = c.Suggest.DefaultMaxResults
	}
	if c.Suggest.KeywordMinScore > 0 {
		rc.KeywordMinScore = c.Suggest.KeywordMinScore
	}
	if c.Suggest.FuzzyMinRatio > 0 {
		rc.FuzzyMinRatio = c.Suggest.FuzzyMinRatio
	}
	if c.Suggest.FuzzyLimit > 0 {
		rc.FuzzyLimit = c.Suggest.FuzzyLimit
	}
	if c.Suggest.SemanticMinSimilarity > 0 {
		rc.SemanticMinSimilarity = c.Suggest.SemanticMinSimilarity
	}
	if c.Suggest.CapabilityTimeoutMS > 0 {
		rc.CapabilityTimeout = time.Duration(c.Suggest.CapabilityTimeoutMS) * time.Millisecond
	}
	return rc
}
