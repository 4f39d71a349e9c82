package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"decisim/internal/impact"
	"decisim/internal/scenario"
	"decisim/internal/twin"
)

var (
	analyzeDecisionPath string
	analyzeSnapshotPath string
	analyzeHorizon      int
	analyzeDepartment   string
	analyzeOutPath      string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the impact of a single decision's options",
	RunE: func(cmd *cobra.Command, args []string) error {
		decData, err := os.ReadFile(analyzeDecisionPath)
		if err != nil {
			return fmt.Errorf("read decision: %w", err)
		}
		var dec scenario.Decision
		if err := json.Unmarshal(decData, &dec); err != nil {
			return fmt.Errorf("parse decision: %w", err)
		}

		snapData, err := os.ReadFile(analyzeSnapshotPath)
		if err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}
		var snap twin.Snapshot
		if err := json.Unmarshal(snapData, &snap); err != nil {
			return fmt.Errorf("parse snapshot: %w", err)
		}

		analyzer := impact.NewAnalyzer(cfg.Engine)
		analysis, err := analyzer.Analyze(&snap, &dec, impact.Context{
			HorizonMonths: analyzeHorizon,
			Department:    analyzeDepartment,
		})
		if err != nil {
			return err
		}

		return writeJSON(analyzeOutPath, analysis)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeDecisionPath, "decision", "", "path to the decision JSON document (required)")
	analyzeCmd.Flags().StringVar(&analyzeSnapshotPath, "snapshot", "", "path to the business snapshot JSON document (required)")
	analyzeCmd.Flags().IntVar(&analyzeHorizon, "horizon", 0, "analysis horizon in months for the time constraint check")
	analyzeCmd.Flags().StringVar(&analyzeDepartment, "department", "", "department whose budget bounds the decision")
	analyzeCmd.Flags().StringVar(&analyzeOutPath, "out", "", "write the analysis to a file instead of stdout")
	_ = analyzeCmd.MarkFlagRequired("decision")
	_ = analyzeCmd.MarkFlagRequired("snapshot")
}
