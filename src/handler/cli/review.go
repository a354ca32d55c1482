package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bensonms/ado-auto-review/src/controller"
	"github.com/bensonms/ado-auto-review/src/model"
	"github.com/bensonms/ado-auto-review/src/service/provider"
	"github.com/bensonms/ado-auto-review/src/util"
)

func (h *Handler) reviewCmd() *cobra.Command {
	var (
		prID      int
		latest    bool
		outputDir string
		format    string
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review a pull request",
		Long:  "Fetches a pull request change-set, runs all detectors and policy checks, and generates a review report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if prID == 0 && !latest {
				return fmt.Errorf("either --pr or --latest is required")
			}

			util.Info("Reviewing pull request (timeout: %v)", timeout)

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			id := prID
			if latest {
				id = provider.Latest
			}

			reviewCtrl := controller.NewReviewController(h.cfg)
			rep, err := reviewCtrl.Review(ctx, controller.ReviewRequest{
				PullRequestID: id,
			})
			if err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return fmt.Errorf("pull request not found: %w", err)
				}
				util.Error("Review failed: %v", err)
				return fmt.Errorf("review failed: %w", err)
			}

			// Output results
			reportCtrl := controller.NewReportController(h.cfg)
			if outputDir != "" {
				h.cfg.Output.OutputDir = outputDir
				if format != "" {
					h.cfg.Output.Formats = []string{format}
				}

				paths, err := reportCtrl.GenerateReports(rep)
				if err != nil {
					return fmt.Errorf("generating reports: %w", err)
				}
				for _, path := range paths {
					fmt.Printf("Report written to %s\n", path)
				}
			} else {
				outputFormat := format
				if outputFormat == "" {
					outputFormat = "json"
				}

				output, err := reportCtrl.GenerateToString(rep, outputFormat)
				if err != nil {
					// Fallback to raw JSON
					data, _ := json.MarshalIndent(rep, "", "  ")
					fmt.Println(string(data))
				} else {
					fmt.Println(output)
				}
			}

			// Print summary to stderr
			fmt.Fprintf(os.Stderr, "\n%s\n", rep.Summary)

			return nil
		},
	}

	cmd.Flags().IntVarP(&prID, "pr", "p", 0, "Pull request id to review")
	cmd.Flags().BoolVarP(&latest, "latest", "l", false, "Review the most recent active pull request")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory path")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, markdown)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 2*time.Minute, "Review timeout")

	return cmd
}
