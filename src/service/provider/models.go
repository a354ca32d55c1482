package provider

// pullRequestResponse is the host's representation of a pull request
type pullRequestResponse struct {
	ID           int    `json:"pullRequestId"`
	Title        string `json:"title"`
	SourceBranch string `json:"sourceRefName"`
	TargetBranch string `json:"targetRefName"`
}

// pullRequestListResponse wraps a pull request listing
type pullRequestListResponse struct {
	Count int                   `json:"count"`
	Value []pullRequestResponse `json:"value"`
}

// changeEntry describes one changed file in a pull request
type changeEntry struct {
	Path       string `json:"path"`
	ChangeType string `json:"changeType"` // add, edit, delete, rename
}

// changesResponse wraps the changed-file listing for a pull request
type changesResponse struct {
	Changes []changeEntry `json:"changes"`
}

// commitEntry describes one commit in a pull request
type commitEntry struct {
	Comment string `json:"comment"`
}

// commitsResponse wraps the commit listing for a pull request
type commitsResponse struct {
	Count int           `json:"count"`
	Value []commitEntry `json:"value"`
}

// itemContentResponse carries one file version's text content
type itemContentResponse struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}
