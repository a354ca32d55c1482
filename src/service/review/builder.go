package review

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bensonms/ado-auto-review/src/model"
	"github.com/bensonms/ado-auto-review/src/service/detector"
	"github.com/bensonms/ado-auto-review/src/service/policy"
)

// Builder assembles the final review report from merged findings and
// statistics. Construction is all-or-nothing; the caller never sees a
// partially populated report.
type Builder struct{}

// NewBuilder creates a new report builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build produces the report: ranked suggestions, summary line, statistics,
// and the best-practices checklist. The suggestion sort is stable, so
// equal-severity findings keep their encounter order.
func (b *Builder) Build(set *model.ChangeSet, findings []model.Finding, stats model.Statistics) *model.Report {
	suggestions := make([]model.Finding, len(findings))
	copy(suggestions, findings)
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Severity.Weight() > suggestions[j].Severity.Weight()
	})

	high, medium := 0, 0
	for _, f := range suggestions {
		switch f.Severity {
		case model.SeverityHigh:
			high++
		case model.SeverityMedium:
			medium++
		}
	}

	return &model.Report{
		ID:            uuid.NewString(),
		PullRequestID: set.ID,
		GeneratedAt:   time.Now().UTC(),
		Summary: fmt.Sprintf("PR #%d %q: %d high and %d medium severity suggestions; %d files changed (+%d/-%d lines)",
			set.ID, set.Title, high, medium, stats.FilesChanged, stats.Additions, stats.Deletions),
		Suggestions: suggestions,
		Statistics:  stats,
		BestPractices: model.BestPractices{
			CommitMessages: policy.CheckCommitMessages(set.Commits),
			BranchNaming:   policy.CheckBranchNaming(set.SourceBranch),
			TestCoverage:   !hasCoverageGap(suggestions),
			DocsUpdated:    policy.CheckDocumentation(set.Files),
		},
	}
}

// hasCoverageGap checks findings for the coverage marker instead of
// re-running the detector, keeping the checklist and the suggestion list
// consistent by construction.
func hasCoverageGap(findings []model.Finding) bool {
	for _, f := range findings {
		if strings.Contains(f.Message, detector.NoTestFileMarker) {
			return true
		}
	}
	return false
}
