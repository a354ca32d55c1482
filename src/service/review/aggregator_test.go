package review

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
)

func TestAggregator_DeduplicatesChangeSetWideFindings(t *testing.T) {
	a := NewAggregator(config.DefaultConfig())
	content := "const apiKey = process.env.API_KEY;\n"

	set := &model.ChangeSet{
		ID: 1,
		Files: []model.FileChange{
			{Path: "app/auth.js", Kind: model.ChangeEdited, Content: content, HasContent: true},
			{Path: "app/session.js", Kind: model.ChangeEdited, Content: content, HasContent: true},
		},
	}

	findings, _, err := a.Aggregate(context.Background(), set)
	require.NoError(t, err)

	require.Len(t, findings, 1)
	assert.True(t, findings[0].IsChangeSetWide())
	assert.Contains(t, findings[0].Message, "API_KEY")
}

func TestAggregator_Statistics(t *testing.T) {
	a := NewAggregator(config.DefaultConfig())

	set := &model.ChangeSet{
		ID: 2,
		Files: []model.FileChange{
			{
				Path:       "app/alpha.js",
				Kind:       model.ChangeAdded,
				Content:    "alpha();\nbeta();\ngamma();",
				HasContent: true,
			},
			{
				Path:          "app/beta.js",
				Kind:          model.ChangeEdited,
				Content:       "alpha();\nbeta();\ngamma();\ndelta();",
				OldContent:    strings.Repeat("stale();\n", 9) + "stale();",
				HasContent:    true,
				HasOldContent: true,
			},
			{Path: "app/gone.js", Kind: model.ChangeDeleted},
		},
	}

	findings, stats, err := a.Aggregate(context.Background(), set)
	require.NoError(t, err)

	assert.Empty(t, findings)
	assert.Equal(t, 3, stats.FilesChanged)
	assert.Equal(t, 7, stats.Additions)
	assert.Equal(t, 6, stats.Deletions)
	assert.Equal(t, 13, stats.TotalChanges)
}

func TestAggregator_DeletionOnlyChangeSet(t *testing.T) {
	a := NewAggregator(config.DefaultConfig())

	set := &model.ChangeSet{
		ID: 3,
		Files: []model.FileChange{
			{Path: "app/old.js", Kind: model.ChangeDeleted},
			{Path: "app/older.js", Kind: model.ChangeDeleted},
		},
	}

	findings, stats, err := a.Aggregate(context.Background(), set)
	require.NoError(t, err)

	assert.Empty(t, findings)
	assert.Equal(t, 2, stats.FilesChanged)
	assert.Zero(t, stats.Additions)
	assert.Zero(t, stats.Deletions)
	assert.Zero(t, stats.TotalChanges)
}

func TestAggregator_FileCapLimitsAnalysis(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Review.MaxFiles = 1
	a := NewAggregator(cfg)

	set := &model.ChangeSet{
		ID: 5,
		Files: []model.FileChange{
			{
				Path:       "app/first.js",
				Kind:       model.ChangeAdded,
				Content:    "first();\nsecond();",
				HasContent: true,
			},
			{
				Path:       "app/second.js",
				Kind:       model.ChangeAdded,
				Content:    "eval(payload);\n",
				HasContent: true,
			},
		},
	}

	findings, stats, err := a.Aggregate(context.Background(), set)
	require.NoError(t, err)

	// Only the first file is analyzed; the capped file neither yields
	// findings nor counts toward line statistics
	assert.Empty(t, findings)
	assert.Equal(t, 2, stats.FilesChanged)
	assert.Equal(t, 2, stats.Additions)
	assert.Equal(t, 2, stats.TotalChanges)
}

func TestAggregator_ExcludedPathsAreSkipped(t *testing.T) {
	a := NewAggregator(config.DefaultConfig())

	set := &model.ChangeSet{
		ID: 4,
		Files: []model.FileChange{
			{
				Path:       "app/node_modules/dep/index.js",
				Kind:       model.ChangeAdded,
				Content:    "eval(payload);\n",
				HasContent: true,
			},
		},
	}

	findings, stats, err := a.Aggregate(context.Background(), set)
	require.NoError(t, err)

	assert.Empty(t, findings)
	assert.Equal(t, 1, stats.FilesChanged)
	assert.Zero(t, stats.Additions)
}
