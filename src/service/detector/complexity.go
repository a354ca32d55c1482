package detector

import (
	"fmt"
	"regexp"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
)

var (
	functionHeadPattern = regexp.MustCompile(`function\s+(\w+)\s*\([^)]*\)\s*\{`)
	branchTokenPattern  = regexp.MustCompile(`\bif\b|\bwhile\b|\bfor\b|\bswitch\b|\bcatch\b|&&|\|\|`)
	asyncMarkerPattern  = regexp.MustCompile(`\.then\s*\(|\bawait\b|\basync\b`)
)

// ComplexityDetector flags function blocks with many branching points and
// files saturated with chained async operations.
type ComplexityDetector struct {
	BaseDetector
	cfg config.ComplexityDetectorConfig
}

// NewComplexityDetector creates a new complexity detector
func NewComplexityDetector(base BaseDetector, cfg config.ComplexityDetectorConfig) *ComplexityDetector {
	return &ComplexityDetector{
		BaseDetector: base,
		cfg:          cfg,
	}
}

// Name returns the detector name
func (d *ComplexityDetector) Name() string {
	return "complexity"
}

// IsEnabled returns whether the detector is enabled
func (d *ComplexityDetector) IsEnabled() bool {
	return d.cfg.Enabled
}

// Detect runs complexity detection on one file
func (d *ComplexityDetector) Detect(file *model.FileChange, set *model.ChangeSet) []model.Finding {
	if !d.IsSourceFile(file.Path) {
		return nil
	}

	var findings []model.Finding
	content := file.Content

	for _, loc := range functionHeadPattern.FindAllStringSubmatchIndex(content, -1) {
		name := content[loc[2]:loc[3]]
		body := functionBody(content, loc[1]-1)
		branches := len(branchTokenPattern.FindAllString(body, -1))
		if branches > d.cfg.MaxBranchTokens {
			findings = append(findings, model.Finding{
				File:     file.Path,
				Line:     lineOfOffset(content, loc[0]),
				Message:  fmt.Sprintf("Function %q has high cyclomatic complexity (%d branching points)", name, branches),
				Severity: model.SeverityHigh,
			})
		}
	}

	if markers := len(asyncMarkerPattern.FindAllString(content, -1)); markers > d.cfg.MaxAsyncMarkers {
		findings = append(findings, model.Finding{
			File:     file.Path,
			Message:  fmt.Sprintf("Deep nesting of async operations (%d markers); consider flattening with async/await", markers),
			Severity: model.SeverityMedium,
		})
	}

	return findings
}

// functionBody returns the brace-delimited block starting at the opening
// brace offset. An unbalanced block yields everything to end of content.
func functionBody(content string, open int) string {
	depth := 0
	for i := open; i < len(content); i++ {
		switch content[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return content[open+1 : i]
			}
		}
	}
	return content[open+1:]
}
