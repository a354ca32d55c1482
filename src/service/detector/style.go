package detector

import (
	"regexp"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
)

var (
	shortIdentifierPattern = regexp.MustCompile(`\b(?:var|let|const)\s+[a-zA-Z_]{1,2}\b`)
	varDeclarationPattern  = regexp.MustCompile(`\bvar\s+\w`)
)

// StyleDetector flags unclear one- or two-character identifiers and legacy
// var declarations.
type StyleDetector struct {
	BaseDetector
	cfg config.StyleDetectorConfig
}

// NewStyleDetector creates a new style detector
func NewStyleDetector(base BaseDetector, cfg config.StyleDetectorConfig) *StyleDetector {
	return &StyleDetector{
		BaseDetector: base,
		cfg:          cfg,
	}
}

// Name returns the detector name
func (d *StyleDetector) Name() string {
	return "style"
}

// IsEnabled returns whether the detector is enabled
func (d *StyleDetector) IsEnabled() bool {
	return d.cfg.Enabled
}

// Detect runs style detection on one file
func (d *StyleDetector) Detect(file *model.FileChange, set *model.ChangeSet) []model.Finding {
	if !d.IsSourceFile(file.Path) {
		return nil
	}

	var findings []model.Finding
	content := file.Content

	if loc := shortIdentifierPattern.FindStringIndex(content); loc != nil {
		findings = append(findings, model.Finding{
			File:     file.Path,
			Line:     lineOfOffset(content, loc[0]),
			Message:  "Very short identifier names make code unclear; use descriptive names",
			Severity: model.SeverityMedium,
		})
	}

	if loc := varDeclarationPattern.FindStringIndex(content); loc != nil {
		findings = append(findings, model.Finding{
			File:     file.Path,
			Line:     lineOfOffset(content, loc[0]),
			Message:  "Use const or let instead of var for block-scoped declarations",
			Severity: model.SeverityMedium,
		})
	}

	return findings
}
