package util

import (
	"path/filepath"
	"strings"
)

// ExclusionMatcher matches changed file paths against exclusion patterns so
// vendored, generated, or minified files are skipped before analysis.
type ExclusionMatcher struct {
	patterns []string
}

// NewExclusionMatcher creates a new exclusion matcher from glob patterns
func NewExclusionMatcher(patterns []string) *ExclusionMatcher {
	return &ExclusionMatcher{patterns: patterns}
}

// Matches checks if a file path should be excluded from analysis
func (m *ExclusionMatcher) Matches(filePath string) bool {
	for _, pattern := range m.patterns {
		if MatchGlob(pattern, filePath) {
			return true
		}
	}
	return false
}

// matchDoubleGlob handles ** patterns in globs
func matchDoubleGlob(pattern, path string) bool {
	if strings.Contains(pattern, "**") {
		// Convert ** to a simpler containment check
		parts := strings.Split(pattern, "**")
		if len(parts) == 3 && parts[0] == "" && parts[2] == "" {
			// **/segment/** matches the segment anywhere in the path
			segment := strings.Trim(parts[1], "/")
			return strings.HasPrefix(path, segment+"/") || strings.Contains(path, "/"+segment+"/")
		}
		if len(parts) == 2 {
			prefix := strings.TrimSuffix(parts[0], "/")
			suffix := strings.TrimPrefix(parts[1], "/")

			if prefix == "" && suffix != "" {
				if strings.Contains(suffix, "*") {
					base := path[strings.LastIndex(path, "/")+1:]
					matched, _ := filepath.Match(suffix, base)
					return matched
				}
				return strings.HasSuffix(path, suffix) || strings.Contains(path, "/"+suffix)
			}
			if suffix == "" && prefix != "" {
				return strings.HasPrefix(path, prefix) || strings.Contains(path, prefix+"/")
			}
			if prefix != "" && suffix != "" {
				return strings.Contains(path, prefix) && strings.Contains(path, suffix)
			}
		}
	}
	return false
}

// MatchGlob matches a path against a glob pattern
func MatchGlob(pattern, path string) bool {
	if strings.Contains(pattern, "**") {
		return matchDoubleGlob(pattern, path)
	}
	matched, _ := filepath.Match(pattern, path)
	return matched
}
