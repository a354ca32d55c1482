package config

import "time"

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "ado-auto-review",
			Version:     "1.0.0",
			Description: "Automated pull request review agent",
		},
		Provider: ProviderConfig{
			URL:     "http://localhost:8181",
			Timeout: 30 * time.Second,
			Retry: RetryConfig{
				MaxAttempts:   3,
				BackoffFactor: 1.5,
				InitialDelay:  100 * time.Millisecond,
				MaxDelay:      5 * time.Second,
				RetryOnStatus: []int{502, 503, 504},
			},
		},
		Concurrency: ConcurrencyConfig{
			MaxParallelFiles: 5,
		},
		Review: ReviewConfig{
			MaxFiles:            200,
			SourceExtensions:    []string{".js", ".jsx", ".ts", ".tsx"},
			ComponentExtensions: []string{".jsx", ".tsx"},
			ExcludePatterns: []string{
				"**/node_modules/**", "**/dist/**", "**/build/**",
				"**/vendor/**", "**/*.min.js",
			},
		},
		Detectors: DetectorsConfig{
			Complexity: ComplexityDetectorConfig{
				Enabled:         true,
				MaxBranchTokens: 10,
				MaxAsyncMarkers: 3,
			},
			Security: SecurityDetectorConfig{
				Enabled: true,
			},
			Performance: PerformanceDetectorConfig{
				Enabled:       true,
				MaxLoopTokens: 5,
			},
			Style: StyleDetectorConfig{
				Enabled: true,
			},
			Size: SizeDetectorConfig{
				Enabled:      true,
				MaxFileLines: 300,
			},
			Component: ComponentDetectorConfig{
				Enabled: true,
			},
			MovedCode: MovedCodeDetectorConfig{
				Enabled:        true,
				BlockSize:      5,
				MaxMovedBlocks: 3,
			},
			Coverage: CoverageDetectorConfig{
				Enabled:    true,
				SourceRoot: "src/",
			},
		},
		Output: OutputConfig{
			Formats:   []string{"json"},
			OutputDir: ".",
		},
		Logging: LoggingConfig{
			Level:            "info",
			Format:           "text",
			IncludeTimestamp: true,
			IncludeCaller:    false,
		},
	}
}
