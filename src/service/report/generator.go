package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
	"github.com/bensonms/ado-auto-review/src/util"
)

// Generator renders review reports in various formats
type Generator struct {
	cfg config.OutputConfig
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.OutputConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Generate renders a report in the specified format
func (g *Generator) Generate(rep *model.Report, format string) (string, error) {
	util.Debug("Generating report in %s format (%d suggestions)", format, len(rep.Suggestions))
	switch format {
	case "json":
		return g.generateJSON(rep)
	case "markdown", "md":
		return g.generateMarkdown(rep)
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (g *Generator) generateJSON(rep *model.Report) (string, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateMarkdown(rep *model.Report) (string, error) {
	var sb strings.Builder

	sb.WriteString("# Pull Request Review Report\n\n")
	sb.WriteString(fmt.Sprintf("%s\n\n", rep.Summary))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", rep.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

	sb.WriteString("## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Files changed | %d |\n", rep.Statistics.FilesChanged))
	sb.WriteString(fmt.Sprintf("| Additions | %d |\n", rep.Statistics.Additions))
	sb.WriteString(fmt.Sprintf("| Deletions | %d |\n", rep.Statistics.Deletions))
	sb.WriteString(fmt.Sprintf("| Total changes | %d |\n\n", rep.Statistics.TotalChanges))

	sb.WriteString("## Best Practices\n\n")
	writeCheck(&sb, "Commit messages follow conventions", rep.BestPractices.CommitMessages)
	writeCheck(&sb, "Branch naming follows conventions", rep.BestPractices.BranchNaming)
	writeCheck(&sb, "Tests updated alongside source", rep.BestPractices.TestCoverage)
	writeCheck(&sb, "Documentation updated", rep.BestPractices.DocsUpdated)
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("## Suggestions (%d)\n\n", len(rep.Suggestions)))
	for _, s := range rep.Suggestions {
		location := s.File
		if s.IsChangeSetWide() {
			location = "change-set"
		} else if s.Line > 0 {
			location = fmt.Sprintf("%s:%d", s.File, s.Line)
		}
		sb.WriteString(fmt.Sprintf("- %s `%s`: %s\n", severityTag(s.Severity), location, s.Message))
	}

	return sb.String(), nil
}

func writeCheck(sb *strings.Builder, label string, ok bool) {
	mark := "[ ]"
	if ok {
		mark = "[x]"
	}
	sb.WriteString(fmt.Sprintf("- %s %s\n", mark, label))
}

func severityTag(s model.Severity) string {
	switch s {
	case model.SeverityHigh:
		return "[HIGH]"
	case model.SeverityMedium:
		return "[MEDIUM]"
	default:
		return "[LOW]"
	}
}
