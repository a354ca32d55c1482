// Package provider resolves a pull request identifier into an in-memory
// ChangeSet: file paths, file contents before and after, commits, and branch
// names. All fetching happens here; the review core never performs I/O.
package provider

import (
	"context"

	"github.com/bensonms/ado-auto-review/src/model"
)

// Latest is the sentinel pull request id meaning "the most recent active
// pull request on the configured repository".
const Latest = 0

// Provider supplies change-sets for review
type Provider interface {
	// ChangeSet returns the change-set for the given pull request id, or
	// model.ErrNotFound if it does not exist. Pass Latest to resolve the
	// most recent active pull request.
	ChangeSet(ctx context.Context, id int) (*model.ChangeSet, error)
}
