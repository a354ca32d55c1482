package detector

import (
	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
	"github.com/bensonms/ado-auto-review/src/util"
)

// Runner holds the fixed, ordered detector registry and runs it over one
// file at a time. Adding a detector means appending it here; the aggregator
// never changes.
type Runner struct {
	detectors []Detector
}

// NewRunner creates a new detector runner with all detectors registered
func NewRunner(cfg *config.Config) *Runner {
	base := NewBaseDetector(cfg.Review)

	detectors := []Detector{
		NewComplexityDetector(base, cfg.Detectors.Complexity),
		NewSecurityDetector(base, cfg.Detectors.Security),
		NewPerformanceDetector(base, cfg.Detectors.Performance),
		NewStyleDetector(base, cfg.Detectors.Style),
		NewSizeDetector(base, cfg.Detectors.Size),
		NewComponentDetector(base, cfg.Detectors.Component),
		NewMovedCodeDetector(base, cfg.Detectors.MovedCode),
		NewCoverageDetector(base, cfg.Detectors.Coverage),
	}

	util.Debug("Detector runner initialized with %d detectors", len(detectors))
	for _, d := range detectors {
		status := "disabled"
		if d.IsEnabled() {
			status = "enabled"
		}
		util.Debug("  - %s: %s", d.Name(), status)
	}

	return &Runner{detectors: detectors}
}

// RunFile executes all enabled detectors against one changed file. A
// detector failure on a single file is logged and contributes zero findings;
// it never aborts the review run.
func (r *Runner) RunFile(file *model.FileChange, set *model.ChangeSet) []model.Finding {
	var findings []model.Finding

	for _, d := range r.detectors {
		if !d.IsEnabled() {
			continue
		}
		findings = append(findings, r.runOne(d, file, set)...)
	}

	return findings
}

func (r *Runner) runOne(d Detector, file *model.FileChange, set *model.ChangeSet) (findings []model.Finding) {
	defer func() {
		if rec := recover(); rec != nil {
			util.Error("Detector %s failed on %s: %v; skipping file", d.Name(), file.Path, rec)
			findings = nil
		}
	}()

	return d.Detect(file, set)
}

// GetDetector returns a detector by name
func (r *Runner) GetDetector(name string) Detector {
	for _, d := range r.detectors {
		if d.Name() == name {
			return d
		}
	}
	return nil
}

// ListDetectors returns names of all registered detectors
func (r *Runner) ListDetectors() []string {
	names := make([]string, len(r.detectors))
	for i, d := range r.detectors {
		names[i] = d.Name()
	}
	return names
}
