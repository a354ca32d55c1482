package detector

import (
	"path/filepath"
	"strings"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
)

// Detector is the interface for all review pattern detectors. Detect is pure
// and total: it performs no I/O and returns an empty slice when nothing
// matches. The change-set is passed alongside the file so cross-file checks
// (e.g. test coverage) can inspect sibling paths without doing any fetching.
type Detector interface {
	// Name returns the detector name
	Name() string

	// IsEnabled returns whether the detector is enabled
	IsEnabled() bool

	// Detect analyzes one changed file and returns found issues
	Detect(file *model.FileChange, set *model.ChangeSet) []model.Finding
}

// BaseDetector provides common functionality for detectors
type BaseDetector struct {
	Review config.ReviewConfig
}

// NewBaseDetector creates a new base detector
func NewBaseDetector(review config.ReviewConfig) BaseDetector {
	return BaseDetector{Review: review}
}

// IsSourceFile reports whether the path has a source-language extension
func (b *BaseDetector) IsSourceFile(path string) bool {
	return hasExtension(path, b.Review.SourceExtensions)
}

// IsComponentFile reports whether the path has a UI-component extension
func (b *BaseDetector) IsComponentFile(path string) bool {
	return hasExtension(path, b.Review.ComponentExtensions)
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// CountLines counts newline-delimited lines in content
func CountLines(content string) int {
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}

// lineOfOffset returns the 1-based line number of a byte offset in content
func lineOfOffset(content string, offset int) int {
	if offset > len(content) {
		offset = len(content)
	}
	return strings.Count(content[:offset], "\n") + 1
}
