// Package policy evaluates change-set conventions: commit message format,
// branch naming, and documentation presence. The patterns are fixed; a
// change-set either satisfies a policy or it does not.
package policy

import (
	"regexp"
	"strings"

	"github.com/bensonms/ado-auto-review/src/model"
)

var (
	// Conventional commit: type, optional (scope), colon-space, 1-50 chars
	commitMessagePattern = regexp.MustCompile(`^(feat|fix|docs|style|refactor|test|chore)(\(.+\))?: .{1,50}$`)

	// type/description where description is lowercase alphanumeric-with-hyphens
	branchNamePattern = regexp.MustCompile(`^(feature|bugfix|hotfix|release)/[a-z0-9-]+$`)
)

const refNamespacePrefix = "refs/heads/"

// CheckCommitMessages reports whether every commit message follows the
// conventional-commit pattern, is at least 10 characters long, and does not
// contain "wip" in any case. A single failing commit fails the whole check.
func CheckCommitMessages(commits []model.Commit) bool {
	for _, c := range commits {
		if !commitMessageOK(c.Message) {
			return false
		}
	}
	return true
}

func commitMessageOK(message string) bool {
	if len(message) < 10 {
		return false
	}
	if strings.Contains(strings.ToLower(message), "wip") {
		return false
	}
	return commitMessagePattern.MatchString(message)
}

// CheckBranchNaming reports whether the source branch name, with any leading
// ref namespace stripped, matches type/description. The match is
// case-sensitive.
func CheckBranchNaming(branch string) bool {
	branch = strings.TrimPrefix(branch, refNamespacePrefix)
	return branchNamePattern.MatchString(branch)
}

// CheckDocumentation reports whether the change-set touches documentation:
// a README, anything under docs/, or any markdown file.
func CheckDocumentation(files []model.FileChange) bool {
	for _, f := range files {
		if strings.Contains(f.Path, "README") ||
			strings.Contains(f.Path, "docs/") ||
			strings.HasSuffix(f.Path, ".md") {
			return true
		}
	}
	return false
}
