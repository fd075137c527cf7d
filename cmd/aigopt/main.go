// Command aigopt loads AIGER circuits and runs the sweep/optimize/
// strash/simulate/fraig passes against them, either one at a time or
// chained together as a pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/lhuang-aig/aigopt/pkg/aig"
	"github.com/lhuang-aig/aigopt/pkg/aiger"
	"github.com/lhuang-aig/aigopt/pkg/fraig"
	"github.com/lhuang-aig/aigopt/pkg/report"
	"github.com/lhuang-aig/aigopt/pkg/rewrite"
	"github.com/lhuang-aig/aigopt/pkg/satif"
	"github.com/lhuang-aig/aigopt/pkg/sim"
	"github.com/spf13/cobra"
)

func loadCircuit(path string) (*aig.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	s, err := aiger.Read(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

func writeCircuit(path string, s *aig.Store) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := aiger.Write(f, s); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("Written to %s\n", path)
	return nil
}

// runFraig proves and collapses fec's equivalence candidates in s,
// using the sequential driver when workers is 1 or less and the
// worker-pool driver otherwise.
func runFraig(s *aig.Store, fec *sim.FECPartition, workers int) {
	if workers <= 1 {
		fraig.Run(s, satif.NewGiniSolver(), fec)
		return
	}
	fraig.RunParallel(s, func() satif.Solver { return satif.NewGiniSolver() }, fec, fraig.Config{NumWorkers: workers})
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "aigopt",
		Short: "And-Inverter Graph optimizer — sweep, optimize, strash and prove equivalence",
	}

	var output string

	sweepCmd := &cobra.Command{
		Use:   "sweep [circuit.aag]",
		Short: "Remove dead AND/UNDEF gates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadCircuit(args[0])
			if err != nil {
				return err
			}
			rewrite.Sweep(s)
			fmt.Println(report.Summary(s))
			return writeCircuit(output, s)
		},
	}
	sweepCmd.Flags().StringVar(&output, "output", "", "Write the resulting circuit here")

	optimizeCmd := &cobra.Command{
		Use:   "optimize [circuit.aag]",
		Short: "Fold constant and identity AND gates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadCircuit(args[0])
			if err != nil {
				return err
			}
			rewrite.Optimize(s)
			fmt.Println(report.Summary(s))
			return writeCircuit(output, s)
		},
	}
	optimizeCmd.Flags().StringVar(&output, "output", "", "Write the resulting circuit here")

	strashCmd := &cobra.Command{
		Use:   "strash [circuit.aag]",
		Short: "Collapse structurally identical AND gates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadCircuit(args[0])
			if err != nil {
				return err
			}
			rewrite.Strash(s)
			fmt.Println(report.Summary(s))
			return writeCircuit(output, s)
		},
	}
	strashCmd.Flags().StringVar(&output, "output", "", "Write the resulting circuit here")

	var patternFile string
	var logFile string
	var seed int64
	var checkpointFile string
	simulateCmd := &cobra.Command{
		Use:   "simulate [circuit.aag]",
		Short: "Simulate the circuit and report the resulting FEC partition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadCircuit(args[0])
			if err != nil {
				return err
			}
			cfg := sim.Config{Seed: seed, CheckpointPath: checkpointFile}
			if logFile != "" {
				lf, err := os.Create(logFile)
				if err != nil {
					return fmt.Errorf("create %s: %w", logFile, err)
				}
				defer lf.Close()
				cfg.Log = lf
			}
			if patternFile != "" {
				f, err := os.Open(patternFile)
				if err != nil {
					return fmt.Errorf("open %s: %w", patternFile, err)
				}
				defer f.Close()
				batches, count, err := sim.ParsePatternFile(f, len(s.Inputs))
				if err != nil {
					// Patterns already parsed before the bad line still
					// count; simulate on them instead of aborting.
					fmt.Fprintln(os.Stderr, err)
				}
				cfg.FromFile = true
				cfg.Patterns, cfg.Count = batches, count
			}
			fec, _ := sim.Run(s, cfg)
			fmt.Printf("\n%d FEC classes found\n", fec.Count())
			return nil
		},
	}
	simulateCmd.Flags().StringVar(&patternFile, "patterns", "", "Simulate these patterns instead of random ones")
	simulateCmd.Flags().StringVar(&logFile, "log", "", "Write a per-lane input/output simulation log here")
	simulateCmd.Flags().Int64Var(&seed, "seed", 1, "Random seed for random simulation")
	simulateCmd.Flags().StringVar(&checkpointFile, "checkpoint", "", "Resume from and periodically save the FEC partition here")

	var fraigSeed int64
	var fraigWorkers int
	var fraigCheckpoint string
	fraigCmd := &cobra.Command{
		Use:   "fraig [circuit.aag]",
		Short: "Random-simulate then SAT-prove the circuit's FEC candidates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadCircuit(args[0])
			if err != nil {
				return err
			}
			fec, _ := sim.Run(s, sim.Config{Seed: fraigSeed, CheckpointPath: fraigCheckpoint})
			runFraig(s, fec, fraigWorkers)
			rewrite.Sweep(s)
			fmt.Println(report.Summary(s))
			return writeCircuit(output, s)
		},
	}
	fraigCmd.Flags().StringVar(&output, "output", "", "Write the resulting circuit here")
	fraigCmd.Flags().Int64Var(&fraigSeed, "seed", 1, "Random seed for random simulation")
	fraigCmd.Flags().IntVar(&fraigWorkers, "workers", 1, "Parallel SAT-query workers (1 runs the sequential driver)")
	fraigCmd.Flags().StringVar(&fraigCheckpoint, "checkpoint", "", "Resume from and periodically save the random-simulation FEC partition here")

	pipelineCmd := &cobra.Command{
		Use:   "pipeline [circuit.aag]",
		Short: "Run sweep, optimize, strash, then fraig in sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadCircuit(args[0])
			if err != nil {
				return err
			}
			rewrite.Sweep(s)
			rewrite.Optimize(s)
			rewrite.Strash(s)
			rewrite.Sweep(s)

			fec, _ := sim.Run(s, sim.Config{Seed: 1})
			runFraig(s, fec, fraigWorkers)
			rewrite.Sweep(s)

			fmt.Println(report.Summary(s))
			return writeCircuit(output, s)
		},
	}
	pipelineCmd.Flags().StringVar(&output, "output", "", "Write the resulting circuit here")
	pipelineCmd.Flags().IntVar(&fraigWorkers, "workers", 1, "Parallel SAT-query workers (1 runs the sequential driver)")

	reportCmd := &cobra.Command{
		Use:   "report [circuit.aag] [gate-id]",
		Short: "Print a boxed report for one gate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadCircuit(args[0])
			if err != nil {
				return err
			}
			var id uint32
			if _, err := fmt.Sscanf(args[1], "%d", &id); err != nil {
				return fmt.Errorf("bad gate id %q: %w", args[1], err)
			}
			fmt.Println(report.GateReport(s, id, nil))
			return nil
		},
	}

	rootCmd.AddCommand(sweepCmd, optimizeCmd, strashCmd, simulateCmd, fraigCmd, pipelineCmd, reportCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
