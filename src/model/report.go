package model

import "time"

// Statistics contains the change-size summary for a review run.
// Additions and Deletions are heuristic line-count proxies, not a true diff:
// every analyzed file contributes its full new line count to Additions, and
// max(0, oldLines-newLines) to Deletions when the prior version is known.
type Statistics struct {
	FilesChanged int `json:"filesChanged"`
	Additions    int `json:"additions"`
	Deletions    int `json:"deletions"`
	TotalChanges int `json:"totalChanges"`
}

// BestPractices is the four-point checklist evaluated per change-set
type BestPractices struct {
	CommitMessages bool `json:"commitMessages"`
	BranchNaming   bool `json:"branchNaming"`
	TestCoverage   bool `json:"testCoverage"`
	DocsUpdated    bool `json:"documentationUpdated"`
}

// Report is the complete review output for one change-set
type Report struct {
	ID            string        `json:"id"`
	PullRequestID int           `json:"pull_request_id"`
	GeneratedAt   time.Time     `json:"generated_at"`
	Summary       string        `json:"summary"`
	Suggestions   []Finding     `json:"suggestions"`
	Statistics    Statistics    `json:"statistics"`
	BestPractices BestPractices `json:"bestPractices"`
}
