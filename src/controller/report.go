package controller

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
	"github.com/bensonms/ado-auto-review/src/service/report"
	"github.com/bensonms/ado-auto-review/src/util"
)

// ReportController handles report generation and writing
type ReportController struct {
	cfg *config.Config
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config) *ReportController {
	return &ReportController{cfg: cfg}
}

// GenerateReports writes the report in all configured formats and returns
// the written file paths
func (c *ReportController) GenerateReports(rep *model.Report) ([]string, error) {
	util.Debug("Generating reports for %d formats: %v", len(c.cfg.Output.Formats), c.cfg.Output.Formats)
	generator := report.NewGenerator(c.cfg.Output)
	var outputPaths []string

	for _, format := range c.cfg.Output.Formats {
		util.Debug("Generating %s report", format)
		output, err := generator.Generate(rep, format)
		if err != nil {
			util.Error("Failed to generate %s report: %v", format, err)
			return nil, err
		}

		outputPath := c.getOutputPath(rep.PullRequestID, format)

		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			util.Error("Failed to create output directory: %v", err)
			return nil, err
		}

		if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
			util.Error("Failed to write report to %s: %v", outputPath, err)
			return nil, err
		}

		util.Info("Report written: %s", outputPath)
		outputPaths = append(outputPaths, outputPath)
	}

	return outputPaths, nil
}

// GenerateToString renders a report to a string in one format
func (c *ReportController) GenerateToString(rep *model.Report, format string) (string, error) {
	generator := report.NewGenerator(c.cfg.Output)
	return generator.Generate(rep, format)
}

func (c *ReportController) getOutputPath(prID int, format string) string {
	ext := format
	if format == "markdown" {
		ext = "md"
	}

	filename := fmt.Sprintf("pr-%d-review.%s", prID, ext)
	return filepath.Join(c.cfg.Output.OutputDir, filename)
}
