package detector

import (
	"fmt"
	"regexp"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
)

var (
	prototypePattern = regexp.MustCompile(`\b(Array|Object|String|Number|Function)\.prototype\.`)
	loopTokenPattern = regexp.MustCompile(`\bfor\b|\bwhile\b|\.forEach\s*\(|\.map\s*\(|\.filter\s*\(|\.reduce\s*\(`)
	domQueryPattern  = regexp.MustCompile(`querySelectorAll\s*\(`)
)

// PerformanceDetector flags prototype mutation of built-ins, loop-heavy
// files, and broad DOM queries.
type PerformanceDetector struct {
	BaseDetector
	cfg config.PerformanceDetectorConfig
}

// NewPerformanceDetector creates a new performance detector
func NewPerformanceDetector(base BaseDetector, cfg config.PerformanceDetectorConfig) *PerformanceDetector {
	return &PerformanceDetector{
		BaseDetector: base,
		cfg:          cfg,
	}
}

// Name returns the detector name
func (d *PerformanceDetector) Name() string {
	return "performance"
}

// IsEnabled returns whether the detector is enabled
func (d *PerformanceDetector) IsEnabled() bool {
	return d.cfg.Enabled
}

// Detect runs performance detection on one file
func (d *PerformanceDetector) Detect(file *model.FileChange, set *model.ChangeSet) []model.Finding {
	if !d.IsSourceFile(file.Path) {
		return nil
	}

	var findings []model.Finding
	content := file.Content

	if prototypePattern.MatchString(content) {
		findings = append(findings, model.Finding{
			File:     model.ChangeSetWide,
			Message:  "Avoid modifying built-in prototypes; it breaks third-party code globally",
			Severity: model.SeverityMedium,
		})
	}

	if loops := len(loopTokenPattern.FindAllString(content, -1)); loops > d.cfg.MaxLoopTokens {
		findings = append(findings, model.Finding{
			File:     file.Path,
			Message:  fmt.Sprintf("File contains %d loops/iterations; possible performance bottleneck", loops),
			Severity: model.SeverityMedium,
		})
	}

	if loc := domQueryPattern.FindStringIndex(content); loc != nil {
		findings = append(findings, model.Finding{
			File:     file.Path,
			Line:     lineOfOffset(content, loc[0]),
			Message:  "Broad querySelectorAll usage can be slow on large documents; scope the query",
			Severity: model.SeverityLow,
		})
	}

	return findings
}
