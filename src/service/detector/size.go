package detector

import (
	"fmt"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
)

// SizeDetector flags changed files that exceed the configured line limit
type SizeDetector struct {
	BaseDetector
	cfg config.SizeDetectorConfig
}

// NewSizeDetector creates a new size detector
func NewSizeDetector(base BaseDetector, cfg config.SizeDetectorConfig) *SizeDetector {
	return &SizeDetector{
		BaseDetector: base,
		cfg:          cfg,
	}
}

// Name returns the detector name
func (d *SizeDetector) Name() string {
	return "size"
}

// IsEnabled returns whether the detector is enabled
func (d *SizeDetector) IsEnabled() bool {
	return d.cfg.Enabled
}

// Detect runs file-size detection on one file
func (d *SizeDetector) Detect(file *model.FileChange, set *model.ChangeSet) []model.Finding {
	if !d.IsSourceFile(file.Path) {
		return nil
	}

	lines := CountLines(file.Content)
	if lines <= d.cfg.MaxFileLines {
		return nil
	}

	return []model.Finding{{
		File:     file.Path,
		Message:  fmt.Sprintf("File too large (%d lines, threshold %d); consider splitting it", lines, d.cfg.MaxFileLines),
		Severity: model.SeverityMedium,
	}}
}
