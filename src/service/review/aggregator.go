package review

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
	"github.com/bensonms/ado-auto-review/src/service/detector"
	"github.com/bensonms/ado-auto-review/src/util"
)

// Aggregator drives the detector registry over every changed file with
// available content, merging findings and accumulating change statistics.
// Files are analyzed in parallel; results are merged in change-set file
// order so output stays deterministic.
type Aggregator struct {
	runner     *detector.Runner
	cfg        *config.Config
	exclusions *util.ExclusionMatcher
}

// NewAggregator creates a new aggregator
func NewAggregator(cfg *config.Config) *Aggregator {
	return &Aggregator{
		runner:     detector.NewRunner(cfg),
		cfg:        cfg,
		exclusions: util.NewExclusionMatcher(cfg.Review.ExcludePatterns),
	}
}

// Aggregate analyzes a change-set and returns merged findings plus
// statistics. Change-set-wide findings are deduplicated by exact message
// text, first seen wins.
func (a *Aggregator) Aggregate(ctx context.Context, set *model.ChangeSet) ([]model.Finding, model.Statistics, error) {
	stats := model.Statistics{FilesChanged: len(set.Files)}

	indices := a.analyzableFiles(set)
	util.Debug("Aggregator: analyzing %d of %d changed files", len(indices), len(set.Files))

	perFile := make([][]model.Finding, len(indices))

	eg, _ := errgroup.WithContext(ctx)
	limit := a.cfg.Concurrency.MaxParallelFiles
	if limit < 1 {
		limit = 1
	}
	eg.SetLimit(limit)

	for k, idx := range indices {
		k, idx := k, idx
		eg.Go(func() error {
			perFile[k] = a.runner.RunFile(&set.Files[idx], set)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, model.Statistics{}, fmt.Errorf("aggregating findings: %w", err)
	}

	var findings []model.Finding
	seenWide := map[string]bool{}

	for k, idx := range indices {
		file := &set.Files[idx]

		newLines := detector.CountLines(file.Content)
		stats.Additions += newLines
		if file.HasOldContent {
			if removed := detector.CountLines(file.OldContent) - newLines; removed > 0 {
				stats.Deletions += removed
			}
		}

		for _, f := range perFile[k] {
			if f.IsChangeSetWide() {
				if seenWide[f.Message] {
					continue
				}
				seenWide[f.Message] = true
			}
			findings = append(findings, f)
		}
	}

	stats.TotalChanges = stats.Additions + stats.Deletions
	util.Debug("Aggregator: %d findings after dedup, +%d/-%d lines", len(findings), stats.Additions, stats.Deletions)

	return findings, stats, nil
}

// analyzableFiles returns indices of files that have content to scan and are
// not excluded by pattern, capped at the configured per-run maximum.
func (a *Aggregator) analyzableFiles(set *model.ChangeSet) []int {
	var indices []int
	for i, f := range set.Files {
		if !f.HasContent {
			continue
		}
		if a.exclusions.Matches(f.Path) {
			util.Debug("Aggregator: excluding %s", f.Path)
			continue
		}
		indices = append(indices, i)
		if a.cfg.Review.MaxFiles > 0 && len(indices) >= a.cfg.Review.MaxFiles {
			util.Warn("Aggregator: file cap reached (%d); remaining files skipped", a.cfg.Review.MaxFiles)
			break
		}
	}
	return indices
}
