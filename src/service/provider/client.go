package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
	"github.com/bensonms/ado-auto-review/src/util"
)

// Client fetches change-sets from the repository host's REST API
type Client struct {
	baseURL    string
	project    string
	repository string
	token      string
	maxFiles   int
	httpClient *http.Client
	retryConf  config.RetryConfig
}

// NewClient creates a new change-set provider client. maxFiles caps how many
// file contents are fetched per change-set; 0 means no cap.
func NewClient(cfg config.ProviderConfig, maxFiles int) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		project:    cfg.Project,
		repository: cfg.Repository,
		token:      cfg.Token,
		maxFiles:   maxFiles,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		retryConf: cfg.Retry,
	}
}

// ChangeSet fetches the pull request, its changed files with old and new
// contents, and its commits, and assembles them into a model.ChangeSet.
func (c *Client) ChangeSet(ctx context.Context, id int) (*model.ChangeSet, error) {
	pr, err := c.pullRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	util.Info("Fetched pull request #%d: %s", pr.ID, pr.Title)

	var changes changesResponse
	if err := c.get(ctx, c.prPath(pr.ID)+"/changes", &changes); err != nil {
		return nil, fmt.Errorf("fetching changes for pull request %d: %w", pr.ID, err)
	}

	var commits commitsResponse
	if err := c.get(ctx, c.prPath(pr.ID)+"/commits", &commits); err != nil {
		return nil, fmt.Errorf("fetching commits for pull request %d: %w", pr.ID, err)
	}

	set := &model.ChangeSet{
		ID:           pr.ID,
		Title:        pr.Title,
		SourceBranch: pr.SourceBranch,
		TargetBranch: pr.TargetBranch,
	}
	for _, commit := range commits.Value {
		set.Commits = append(set.Commits, model.Commit{Message: commit.Comment})
	}

	fetched := 0
	for _, change := range changes.Changes {
		fc := model.FileChange{
			Path: change.Path,
			Kind: changeKind(change.ChangeType),
		}

		withinCap := c.maxFiles <= 0 || fetched < c.maxFiles
		if fc.Kind != model.ChangeDeleted && withinCap {
			if err := c.fillContents(ctx, &fc, pr); err != nil {
				return nil, err
			}
			fetched++
		}

		set.Files = append(set.Files, fc)
	}

	util.Debug("Change-set #%d assembled: %d files, %d commits", set.ID, len(set.Files), len(set.Commits))
	return set, nil
}

// fillContents resolves the new and old file versions. A missing new version
// is tolerated (the file is skipped by analysis); a missing old version just
// disables diff-dependent checks for the file.
func (c *Client) fillContents(ctx context.Context, fc *model.FileChange, pr *pullRequestResponse) error {
	content, err := c.itemContent(ctx, fc.Path, pr.SourceBranch)
	switch {
	case err == nil:
		fc.Content = content
		fc.HasContent = true
	case isStatus(err, http.StatusNotFound):
		util.Warn("Content for %s not found at %s; file will not be analyzed", fc.Path, pr.SourceBranch)
	default:
		return fmt.Errorf("fetching content of %s: %w", fc.Path, err)
	}

	if fc.Kind == model.ChangeEdited || fc.Kind == model.ChangeRenamed {
		old, err := c.itemContent(ctx, fc.Path, pr.TargetBranch)
		if err != nil {
			util.Debug("Prior version of %s unavailable: %v", fc.Path, err)
		} else {
			fc.OldContent = old
			fc.HasOldContent = true
		}
	}

	return nil
}

func (c *Client) pullRequest(ctx context.Context, id int) (*pullRequestResponse, error) {
	if id == Latest {
		var list pullRequestListResponse
		path := c.repoPath() + "/pullrequests?searchCriteria.status=active&$top=1"
		if err := c.get(ctx, path, &list); err != nil {
			return nil, fmt.Errorf("listing pull requests: %w", err)
		}
		if len(list.Value) == 0 {
			return nil, fmt.Errorf("no active pull requests: %w", model.ErrNotFound)
		}
		return &list.Value[0], nil
	}

	var pr pullRequestResponse
	if err := c.get(ctx, c.prPath(id), &pr); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("pull request %d: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("fetching pull request %d: %w", id, err)
	}
	return &pr, nil
}

func (c *Client) itemContent(ctx context.Context, path, ref string) (string, error) {
	ref = strings.TrimPrefix(ref, "refs/heads/")
	var item itemContentResponse
	query := fmt.Sprintf("/items?path=%s&versionDescriptor.version=%s",
		url.QueryEscape(path), url.QueryEscape(ref))
	if err := c.get(ctx, c.repoPath()+query, &item); err != nil {
		return "", err
	}
	return item.Content, nil
}

func (c *Client) repoPath() string {
	return fmt.Sprintf("/%s/_apis/git/repositories/%s", c.project, c.repository)
}

func (c *Client) prPath(id int) string {
	return fmt.Sprintf("%s/pullrequests/%d", c.repoPath(), id)
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	var lastErr error

	for attempt := 0; attempt <= c.retryConf.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := c.calculateBackoff(attempt)
			util.Warn("Retrying request to %s (attempt %d/%d) after %v", path, attempt+1, c.retryConf.MaxAttempts, delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err := c.doGet(ctx, path, result)
		if err == nil {
			return nil
		}

		lastErr = err
		if !c.shouldRetry(err) {
			break
		}
	}

	return lastErr
}

func (c *Client) doGet(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	delay := float64(c.retryConf.InitialDelay)
	for i := 0; i < attempt; i++ {
		delay *= c.retryConf.BackoffFactor
	}
	if delay > float64(c.retryConf.MaxDelay) {
		delay = float64(c.retryConf.MaxDelay)
	}
	return time.Duration(delay)
}

func (c *Client) shouldRetry(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		for _, code := range c.retryConf.RetryOnStatus {
			if apiErr.StatusCode == code {
				return true
			}
		}
	}
	return false
}

func changeKind(changeType string) model.ChangeKind {
	switch strings.ToLower(changeType) {
	case "add":
		return model.ChangeAdded
	case "delete":
		return model.ChangeDeleted
	case "rename":
		return model.ChangeRenamed
	default:
		return model.ChangeEdited
	}
}

func isStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// APIError represents an error response from the repository host
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider error (status %d): %s", e.StatusCode, e.Body)
}
