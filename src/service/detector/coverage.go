package detector

import (
	"fmt"
	"strings"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
)

// NoTestFileMarker is the message fragment that identifies a test-coverage
// gap finding. The report builder derives the testCoverage best practice
// from its presence so the two can never disagree.
const NoTestFileMarker = "no corresponding test file"

// testPathSegments mark a path as a test file rather than production source
var testPathSegments = []string{".test.", ".spec.", "__tests__"}

// CoverageDetector flags changed source files with no plausible companion
// test file anywhere in the change-set.
type CoverageDetector struct {
	BaseDetector
	cfg config.CoverageDetectorConfig
}

// NewCoverageDetector creates a new test-coverage gap detector
func NewCoverageDetector(base BaseDetector, cfg config.CoverageDetectorConfig) *CoverageDetector {
	return &CoverageDetector{
		BaseDetector: base,
		cfg:          cfg,
	}
}

// Name returns the detector name
func (d *CoverageDetector) Name() string {
	return "coverage"
}

// IsEnabled returns whether the detector is enabled
func (d *CoverageDetector) IsEnabled() bool {
	return d.cfg.Enabled
}

// Detect checks one changed source file for a companion test in the set
func (d *CoverageDetector) Detect(file *model.FileChange, set *model.ChangeSet) []model.Finding {
	if !d.IsSourceFile(file.Path) {
		return nil
	}
	if !strings.Contains(file.Path, d.cfg.SourceRoot) || isTestPath(file.Path) {
		return nil
	}

	candidates := d.testPathCandidates(file.Path)
	found := set.PathInSet(func(path string) bool {
		if path == file.Path {
			return false
		}
		for _, c := range candidates {
			if path == c {
				return true
			}
		}
		return false
	})
	if found {
		return nil
	}

	return []model.Finding{{
		File:     file.Path,
		Message:  fmt.Sprintf("Source file has %s in this change-set; add or update tests", NoTestFileMarker),
		Severity: model.SeverityHigh,
	}}
}

// testPathCandidates lists the paths where a companion test would plausibly
// live: the source segment replaced with a test directory, or a test suffix
// inserted before the extension.
func (d *CoverageDetector) testPathCandidates(path string) []string {
	var candidates []string

	for _, root := range []string{"tests/", "test/", "__tests__/"} {
		candidates = append(candidates, strings.Replace(path, d.cfg.SourceRoot, root, 1))
	}

	if dot := strings.LastIndex(path, "."); dot > 0 {
		base, ext := path[:dot], path[dot:]
		for _, suffix := range []string{".test", ".spec"} {
			withSuffix := base + suffix + ext
			candidates = append(candidates, withSuffix)
			for _, root := range []string{"tests/", "test/", "__tests__/"} {
				candidates = append(candidates, strings.Replace(withSuffix, d.cfg.SourceRoot, root, 1))
			}
		}
	}

	return candidates
}

func isTestPath(path string) bool {
	for _, segment := range testPathSegments {
		if strings.Contains(path, segment) {
			return true
		}
	}
	return false
}
