package detector

import (
	"regexp"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
)

var (
	conditionalHookPattern = regexp.MustCompile(`if\s*\([^)]*\)\s*\{[^{}]*\buse(State|Effect)\s*\(`)
	emptyDepsEffectPattern = regexp.MustCompile(`(?s)useEffect\s*\(.*?,\s*\[\s*\]\s*\)`)
)

// ComponentDetector applies framework rules to UI component files: hooks
// must not run conditionally, and empty-dependency effects need review.
type ComponentDetector struct {
	BaseDetector
	cfg config.ComponentDetectorConfig
}

// NewComponentDetector creates a new component-framework detector
func NewComponentDetector(base BaseDetector, cfg config.ComponentDetectorConfig) *ComponentDetector {
	return &ComponentDetector{
		BaseDetector: base,
		cfg:          cfg,
	}
}

// Name returns the detector name
func (d *ComponentDetector) Name() string {
	return "component"
}

// IsEnabled returns whether the detector is enabled
func (d *ComponentDetector) IsEnabled() bool {
	return d.cfg.Enabled
}

// Detect runs component-framework checks on one file
func (d *ComponentDetector) Detect(file *model.FileChange, set *model.ChangeSet) []model.Finding {
	if !d.IsComponentFile(file.Path) {
		return nil
	}

	var findings []model.Finding
	content := file.Content

	if loc := conditionalHookPattern.FindStringIndex(content); loc != nil {
		findings = append(findings, model.Finding{
			File:     file.Path,
			Line:     lineOfOffset(content, loc[0]),
			Message:  "Hook called conditionally; hooks must run in the same order on every render",
			Severity: model.SeverityHigh,
		})
	}

	if loc := emptyDepsEffectPattern.FindStringIndex(content); loc != nil {
		findings = append(findings, model.Finding{
			File:     file.Path,
			Line:     lineOfOffset(content, loc[0]),
			Message:  "useEffect with an empty dependency array; verify it should run only once",
			Severity: model.SeverityMedium,
		})
	}

	return findings
}
