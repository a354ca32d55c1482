package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bensonms/ado-auto-review/src/service/detector"
)

var detectorDescriptions = map[string]string{
	"complexity":  "Branch-heavy functions and deeply chained async code",
	"security":    "eval(), innerHTML assignment, sensitive env vars",
	"performance": "Prototype mutation, loop-heavy files, broad DOM queries",
	"style":       "Short identifiers, legacy var declarations",
	"size":        "Files over the configured line limit",
	"component":   "Conditional hooks, empty-dependency effects",
	"moved_code":  "Relocated-but-unchanged code blocks",
	"coverage":    "Source changes without companion tests",
}

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ado-auto-review %s\n", h.cfg.Agent.Version)
		},
	}
}

func (h *Handler) detectorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detectors",
		Short: "List available detectors",
		Run: func(cmd *cobra.Command, args []string) {
			runner := detector.NewRunner(h.cfg)
			fmt.Println("Available detectors:")
			for _, name := range runner.ListDetectors() {
				status := "enabled"
				if d := runner.GetDetector(name); d != nil && !d.IsEnabled() {
					status = "disabled"
				}
				fmt.Printf("  - %-12s %s (%s)\n", name, detectorDescriptions[name], status)
			}
		},
	}
}
