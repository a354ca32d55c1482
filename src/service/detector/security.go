package detector

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
)

var (
	dynamicEvalPattern = regexp.MustCompile(`\beval\s*\(|new\s+Function\s*\(`)
	innerHTMLPattern   = regexp.MustCompile(`\.innerHTML\s*=`)
	envVarPattern      = regexp.MustCompile(`process\.env\.([A-Z0-9_]+)`)
)

// sensitiveEnvMarkers are substrings of env var names treated as secrets
var sensitiveEnvMarkers = []string{"KEY", "SECRET", "PASSWORD"}

// SecurityDetector flags dynamic code execution, unsafe HTML injection, and
// references to sensitive-looking environment variables. All of its findings
// are change-set-wide; the aggregator deduplicates them by message text.
type SecurityDetector struct {
	BaseDetector
	cfg config.SecurityDetectorConfig
}

// NewSecurityDetector creates a new security detector
func NewSecurityDetector(base BaseDetector, cfg config.SecurityDetectorConfig) *SecurityDetector {
	return &SecurityDetector{
		BaseDetector: base,
		cfg:          cfg,
	}
}

// Name returns the detector name
func (d *SecurityDetector) Name() string {
	return "security"
}

// IsEnabled returns whether the detector is enabled
func (d *SecurityDetector) IsEnabled() bool {
	return d.cfg.Enabled
}

// Detect runs security detection on one file
func (d *SecurityDetector) Detect(file *model.FileChange, set *model.ChangeSet) []model.Finding {
	if !d.IsSourceFile(file.Path) {
		return nil
	}

	var findings []model.Finding
	content := file.Content

	if dynamicEvalPattern.MatchString(content) {
		findings = append(findings, model.Finding{
			File:     model.ChangeSetWide,
			Message:  "Avoid eval() and dynamic code execution; it enables code injection",
			Severity: model.SeverityHigh,
		})
	}

	if innerHTMLPattern.MatchString(content) {
		findings = append(findings, model.Finding{
			File:     model.ChangeSetWide,
			Message:  "Direct innerHTML assignment risks XSS; prefer textContent or a sanitizer",
			Severity: model.SeverityHigh,
		})
	}

	seen := map[string]bool{}
	for _, m := range envVarPattern.FindAllStringSubmatch(content, -1) {
		name := m[1]
		if seen[name] || !isSensitiveEnvName(name) {
			continue
		}
		seen[name] = true
		findings = append(findings, model.Finding{
			File:     model.ChangeSetWide,
			Message:  fmt.Sprintf("Sensitive environment variable %s referenced in client code", name),
			Severity: model.SeverityHigh,
		})
	}

	return findings
}

func isSensitiveEnvName(name string) bool {
	for _, marker := range sensitiveEnvMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}
