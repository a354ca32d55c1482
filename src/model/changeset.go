package model

// ChangeKind classifies how a file was touched by a change-set
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeEdited  ChangeKind = "edited"
	ChangeDeleted ChangeKind = "deleted"
	ChangeRenamed ChangeKind = "renamed"
)

// FileChange represents a single file touched by a pull request.
// Content is absent for deletions; OldContent may be unavailable even for
// edits, in which case diff-dependent checks are skipped rather than failed.
type FileChange struct {
	Path          string     `json:"path"`
	Kind          ChangeKind `json:"kind"`
	Content       string     `json:"content,omitempty"`
	OldContent    string     `json:"old_content,omitempty"`
	HasContent    bool       `json:"-"`
	HasOldContent bool       `json:"-"`
}

// Commit represents a single commit in a change-set
type Commit struct {
	Message string `json:"message"`
}

// ChangeSet is one pull request's worth of changes, immutable for the
// duration of a review run.
type ChangeSet struct {
	ID           int          `json:"id"`
	Title        string       `json:"title"`
	SourceBranch string       `json:"source_branch"`
	TargetBranch string       `json:"target_branch"`
	Files        []FileChange `json:"files"`
	Commits      []Commit     `json:"commits"`
}

// PathInSet reports whether any changed file path satisfies the predicate
func (cs *ChangeSet) PathInSet(match func(path string) bool) bool {
	for _, f := range cs.Files {
		if match(f.Path) {
			return true
		}
	}
	return false
}
