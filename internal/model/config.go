package model

import "time"

// Config holds the complete runtime configuration. Values resolve through
// the usual cascade: CLI flags > ESPER_THESIS_* environment variables >
// ~/.esper-thesis/config.yaml > the defaults below.
type Config struct {
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`
	Batch    BatchConfig    `yaml:"batch" mapstructure:"batch"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

// DatabaseConfig controls where the corpus JSON file lives.
type DatabaseConfig struct {
	// Path is the default corpus file; empty means ./research_db.json.
	Path string `yaml:"path" mapstructure:"path"`
	// Projects maps a project name to a corpus file path, selectable with
	// the --project flag.
	Projects map[string]string `yaml:"projects" mapstructure:"projects"`
	// CacheTTL bounds how long a decoded corpus snapshot stays in memory.
	CacheTTL time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`
}

// BatchConfig controls parallel batch ingestion.
type BatchConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultDatabase is the corpus file used when nothing else is configured.
const DefaultDatabase = "research_db.json"

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:     DefaultDatabase,
			Projects: map[string]string{},
			CacheTTL: 5 * time.Minute,
		},
		Batch: BatchConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
