package config

import "time"

// Config is the root configuration structure
type Config struct {
	Agent       AgentConfig       `yaml:"agent"`
	Provider    ProviderConfig    `yaml:"provider"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Review      ReviewConfig      `yaml:"review"`
	Detectors   DetectorsConfig   `yaml:"detectors"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// AgentConfig contains agent metadata
type AgentConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// ProviderConfig contains change-set provider connection settings
type ProviderConfig struct {
	URL        string        `yaml:"url"`
	Project    string        `yaml:"project"`
	Repository string        `yaml:"repository"`
	Token      string        `yaml:"token"`
	Timeout    time.Duration `yaml:"timeout"`
	Retry      RetryConfig   `yaml:"retry"`
}

// RetryConfig contains retry settings for provider calls
type RetryConfig struct {
	MaxAttempts   int           `yaml:"max_attempts"`
	BackoffFactor float64       `yaml:"backoff_factor"`
	InitialDelay  time.Duration `yaml:"initial_delay"`
	MaxDelay      time.Duration `yaml:"max_delay"`
	RetryOnStatus []int         `yaml:"retry_on_status"`
}

// ConcurrencyConfig contains concurrency settings
type ConcurrencyConfig struct {
	MaxParallelFiles int `yaml:"max_parallel_files"`
}

// ReviewConfig contains change-set level analysis settings
type ReviewConfig struct {
	// MaxFiles caps how many changed files are analyzed per run; 0 = no cap
	MaxFiles            int      `yaml:"max_files"`
	SourceExtensions    []string `yaml:"source_extensions"`
	ComponentExtensions []string `yaml:"component_extensions"`
	ExcludePatterns     []string `yaml:"exclude_patterns"`
}

// DetectorsConfig contains settings for all detectors
type DetectorsConfig struct {
	Complexity  ComplexityDetectorConfig  `yaml:"complexity"`
	Security    SecurityDetectorConfig    `yaml:"security"`
	Performance PerformanceDetectorConfig `yaml:"performance"`
	Style       StyleDetectorConfig       `yaml:"style"`
	Size        SizeDetectorConfig        `yaml:"size"`
	Component   ComponentDetectorConfig   `yaml:"component"`
	MovedCode   MovedCodeDetectorConfig   `yaml:"moved_code"`
	Coverage    CoverageDetectorConfig    `yaml:"coverage"`
}

// ComplexityDetectorConfig contains complexity detector settings
type ComplexityDetectorConfig struct {
	Enabled         bool `yaml:"enabled"`
	MaxBranchTokens int  `yaml:"max_branch_tokens"`
	MaxAsyncMarkers int  `yaml:"max_async_markers"`
}

// SecurityDetectorConfig contains security detector settings
type SecurityDetectorConfig struct {
	Enabled bool `yaml:"enabled"`
}

// PerformanceDetectorConfig contains performance detector settings
type PerformanceDetectorConfig struct {
	Enabled       bool `yaml:"enabled"`
	MaxLoopTokens int  `yaml:"max_loop_tokens"`
}

// StyleDetectorConfig contains style detector settings
type StyleDetectorConfig struct {
	Enabled bool `yaml:"enabled"`
}

// SizeDetectorConfig contains file-size detector settings
type SizeDetectorConfig struct {
	Enabled      bool `yaml:"enabled"`
	MaxFileLines int  `yaml:"max_file_lines"`
}

// ComponentDetectorConfig contains component-framework detector settings
type ComponentDetectorConfig struct {
	Enabled bool `yaml:"enabled"`
}

// MovedCodeDetectorConfig contains moved-block detector settings
type MovedCodeDetectorConfig struct {
	Enabled        bool `yaml:"enabled"`
	BlockSize      int  `yaml:"block_size"`
	MaxMovedBlocks int  `yaml:"max_moved_blocks"`
}

// CoverageDetectorConfig contains test-coverage gap detector settings
type CoverageDetectorConfig struct {
	Enabled bool `yaml:"enabled"`
	// SourceRoot is the path segment that marks a file as production source
	SourceRoot string `yaml:"source_root"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	Formats   []string `yaml:"formats"`
	OutputDir string   `yaml:"output_dir"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level            string `yaml:"level"`
	Format           string `yaml:"format"` // text, json
	File             string `yaml:"file"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
	IncludeCaller    bool   `yaml:"include_caller"`
}
