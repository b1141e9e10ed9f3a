package config

import "os"

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Suggest.DefaultMaxResults == 0 {
		cfg.Suggest.DefaultMaxResults = 10
	}
	if cfg.Suggest.KeywordMinScore == 0 {
		cfg.Suggest.KeywordMinScore = 0.3
	}
	if cfg.Suggest.FuzzyMinRatio == 0 {
		cfg.Suggest.FuzzyMinRatio = 60
	}
	if cfg.Suggest.FuzzyLimit == 0 {
		cfg.Suggest.FuzzyLimit = 5
	}
	if cfg.Suggest.SemanticMinSimilarity == 0 {
		cfg.Suggest.SemanticMinSimilarity = 0.5
	}
	if cfg.Suggest.CapabilityTimeoutMS == 0 {
		cfg.Suggest.CapabilityTimeoutMS = 5000
	}
	if cfg.Suggest.BatchSize == 0 {
		cfg.Suggest.BatchSize = 32
	}
	if cfg.Embedding.Provider == "" {
		cfg.Embedding.Provider = "mock"
	}
	if cfg.Embedding.Model == "" {
		cfg.Embedding.Model = "text-embedding-3-small"
	}
	if cfg.Embedding.Token == "" {
		cfg.Embedding.Token = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Embedding.Dimensions == 0 {
		cfg.Embedding.Dimensions = 384
	}
	if cfg.Embedding.CacheSize == 0 {
		cfg.Embedding.CacheSize = 1024
	}
	if cfg.Interpret.Strategy == "" {
		cfg.Interpret.Strategy = "rules"
	}
}
