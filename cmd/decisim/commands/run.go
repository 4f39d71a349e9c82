package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"decisim/internal/scenario"
	"decisim/internal/simulation"
	"decisim/internal/store"
	"decisim/internal/twin"
)

var (
	runScenarioPath string
	runSnapshotPath string
	runIterations   int
	runNoMonteCarlo bool
	runSeed         int64
	runOutPath      string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a Monte Carlo simulation for a scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		scn, snap, err := loadInputs(runScenarioPath, runSnapshotPath)
		if err != nil {
			return err
		}

		engine := simulation.NewEngine(cfg.Engine)
		opts := simulation.RunOptions{
			Iterations: runIterations,
			MonteCarlo: !runNoMonteCarlo,
			Seed:       runSeed,
		}

		result, err := engine.Run(cmd.Context(), scn, snap, opts)
		if err != nil {
			return err
		}

		// Persistence is best-effort and happens only after the result is
		// fully assembled; a save failure is logged, never propagated.
		repo := store.NewMemoryRepository()
		if saveErr := repo.Save(store.Record{Scenario: scn, Result: result}); saveErr != nil {
			log.Warn().Err(saveErr).Str("scenario", scn.ID).Msg("Could not persist simulation result")
		}

		return writeJSON(runOutPath, result)
	},
}

// loadInputs reads and validates the scenario and snapshot documents.
func loadInputs(scenarioPath, snapshotPath string) (*scenario.Scenario, *twin.Snapshot, error) {
	scnData, err := os.ReadFile(scenarioPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read scenario: %w", err)
	}
	scn, err := scenario.ParseDocument(scnData)
	if err != nil {
		return nil, nil, err
	}

	snapData, err := os.ReadFile(snapshotPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap twin.Snapshot
	if err := json.Unmarshal(snapData, &snap); err != nil {
		return nil, nil, fmt.Errorf("parse snapshot: %w", err)
	}

	return scn, &snap, nil
}

// writeJSON emits the result to the given file, or stdout when no path is set.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if path == "" {
		_, err = fmt.Println(string(data))
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func init() {
	runCmd.Flags().StringVar(&runScenarioPath, "scenario", "", "path to the scenario JSON document (required)")
	runCmd.Flags().StringVar(&runSnapshotPath, "snapshot", "", "path to the business snapshot JSON document (required)")
	runCmd.Flags().IntVar(&runIterations, "iterations", -1, "iteration count; -1 uses the configured default")
	runCmd.Flags().BoolVar(&runNoMonteCarlo, "no-monte-carlo", false, "skip the dedicated Monte Carlo risk pass")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "RNG seed for reproducible runs; 0 derives from the clock")
	runCmd.Flags().StringVar(&runOutPath, "out", "", "write the result to a file instead of stdout")
	_ = runCmd.MarkFlagRequired("scenario")
	_ = runCmd.MarkFlagRequired("snapshot")
}
