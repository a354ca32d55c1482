package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bensonms/ado-auto-review/src/model"
)

func TestCheckCommitMessages(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		want     bool
	}{
		{"conventional message passes", []string{"feat: add invoice export"}, true},
		{"scoped message passes", []string{"fix(billing): round totals correctly"}, true},
		{"all commit types pass", []string{
			"feat: add a thing",
			"fix: repair a thing",
			"docs: describe a thing",
			"style: align a thing",
			"refactor: reshape a thing",
			"test: cover a thing",
			"chore: bump a thing",
		}, true},
		{"missing prefix fails", []string{"added invoice export"}, false},
		{"wip fails regardless of case", []string{"feat: WIP invoice export"}, false},
		{"too short fails", []string{"fix: nope"}, false},
		{"subject over 50 chars fails", []string{"feat: this subject line is much much much much much too long to pass"}, false},
		{"one bad commit fails the set", []string{"feat: add invoice export", "tweaks"}, false},
		{"empty commit list passes", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var commits []model.Commit
			for _, m := range tt.messages {
				commits = append(commits, model.Commit{Message: m})
			}
			assert.Equal(t, tt.want, CheckCommitMessages(commits))
		})
	}
}

func TestCheckBranchNaming(t *testing.T) {
	tests := []struct {
		branch string
		want   bool
	}{
		{"feature/add-login", true},
		{"refs/heads/feature/add-login", true},
		{"bugfix/rounding-error", true},
		{"hotfix/p0-outage", true},
		{"release/v2", true},
		{"release/v2.1", false},
		{"my-branch", false},
		{"Feature/Add-Login", false},
		{"feature/Add-Login", false},
		{"feature/", false},
	}

	for _, tt := range tests {
		t.Run(tt.branch, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckBranchNaming(tt.branch))
		})
	}
}

func TestCheckDocumentation(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  bool
	}{
		{"README counts", []string{"src/app.js", "README.md"}, true},
		{"docs directory counts", []string{"docs/setup.txt"}, true},
		{"markdown file counts", []string{"guides/usage.md"}, true},
		{"no documentation", []string{"src/app.js", "src/app.test.js"}, false},
		{"empty change-set", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var files []model.FileChange
			for _, p := range tt.paths {
				files = append(files, model.FileChange{Path: p})
			}
			assert.Equal(t, tt.want, CheckDocumentation(files))
		})
	}
}
