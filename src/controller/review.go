package controller

import (
	"context"
	"strconv"
	"time"

	"github.com/bensonms/ado-auto-review/src/config"
	"github.com/bensonms/ado-auto-review/src/model"
	"github.com/bensonms/ado-auto-review/src/service/provider"
	"github.com/bensonms/ado-auto-review/src/service/review"
	"github.com/bensonms/ado-auto-review/src/util"
)

// ReviewController orchestrates the review pipeline: change-set provider,
// aggregator, and report builder. It returns either a complete report or a
// single error, never a partial report.
type ReviewController struct {
	cfg      *config.Config
	provider provider.Provider
}

// NewReviewController creates a new review controller
func NewReviewController(cfg *config.Config) *ReviewController {
	return &ReviewController{
		cfg:      cfg,
		provider: provider.NewClient(cfg.Provider, cfg.Review.MaxFiles),
	}
}

// NewReviewControllerWithProvider creates a controller with a custom
// change-set provider
func NewReviewControllerWithProvider(cfg *config.Config, p provider.Provider) *ReviewController {
	return &ReviewController{cfg: cfg, provider: p}
}

// ReviewRequest represents a request to review a pull request.
// PullRequestID of provider.Latest reviews the most recent active one.
type ReviewRequest struct {
	PullRequestID int
}

// Review runs the full review pipeline for one pull request
func (c *ReviewController) Review(ctx context.Context, req ReviewRequest) (*model.Report, error) {
	startTime := time.Now()

	if c.cfg.Provider.URL == "" {
		return nil, &model.ConfigError{Field: "provider.url", Reason: "change-set provider URL is required"}
	}

	util.Info("Starting review of pull request %s", describePR(req.PullRequestID))

	set, err := c.provider.ChangeSet(ctx, req.PullRequestID)
	if err != nil {
		util.Error("Fetching change-set failed: %v", err)
		return nil, err
	}

	aggregator := review.NewAggregator(c.cfg)
	findings, stats, err := aggregator.Aggregate(ctx, set)
	if err != nil {
		util.Error("Aggregation failed: %v", err)
		return nil, err
	}

	rep := review.NewBuilder().Build(set, findings, stats)

	util.Info("Review complete: %d suggestions for PR #%d (took %v)",
		len(rep.Suggestions), set.ID, time.Since(startTime))

	return rep, nil
}

func describePR(id int) string {
	if id == provider.Latest {
		return "latest"
	}
	return "#" + strconv.Itoa(id)
}
