package detector

import (
	"fmt"
	"strings"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
)

// MovedCodeDetector compares the old and new versions of an edited file and
// flags code that was relocated wholesale rather than refactored. When the
// prior version is unavailable the check is skipped, not failed.
type MovedCodeDetector struct {
	BaseDetector
	cfg config.MovedCodeDetectorConfig
}

// NewMovedCodeDetector creates a new moved-code detector
func NewMovedCodeDetector(base BaseDetector, cfg config.MovedCodeDetectorConfig) *MovedCodeDetector {
	return &MovedCodeDetector{
		BaseDetector: base,
		cfg:          cfg,
	}
}

// Name returns the detector name
func (d *MovedCodeDetector) Name() string {
	return "moved_code"
}

// IsEnabled returns whether the detector is enabled
func (d *MovedCodeDetector) IsEnabled() bool {
	return d.cfg.Enabled
}

// Detect runs moved-block detection on one file
func (d *MovedCodeDetector) Detect(file *model.FileChange, set *model.ChangeSet) []model.Finding {
	if !d.IsSourceFile(file.Path) || !file.HasOldContent {
		return nil
	}

	moved := FindMovedBlocks(file.OldContent, file.Content, d.cfg.BlockSize)
	if moved <= d.cfg.MaxMovedBlocks {
		return nil
	}

	return []model.Finding{{
		File:     file.Path,
		Message:  fmt.Sprintf("%d moved code blocks detected; consider extracting shared modules instead of relocating code", moved),
		Severity: model.SeverityMedium,
	}}
}

// FindMovedBlocks slides a blockSize-line window over the old content and
// searches for an exact textual match in the new content. A match counts as
// moved only when its character offset in the new content differs from the
// old line index by more than the block size. After any match the scan
// advances past the matched block so overlapping windows are not counted
// twice.
func FindMovedBlocks(oldContent, newContent string, blockSize int) int {
	if blockSize <= 0 {
		return 0
	}

	oldLines := strings.Split(oldContent, "\n")
	moved := 0

	for i := 0; i+blockSize <= len(oldLines); {
		block := strings.Join(oldLines[i:i+blockSize], "\n")
		idx := strings.Index(newContent, block)
		if idx < 0 {
			i++
			continue
		}
		if shift := idx - i; shift > blockSize || shift < -blockSize {
			moved++
		}
		i += blockSize
	}

	return moved
}
