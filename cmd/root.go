package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/batchsim/batchsim/sim"
	"github.com/batchsim/batchsim/sim/timeline"
)

var (
	// CLI flags for the simulation run
	workloadPath string // Path to the YAML workload file (empty = built-in sample)
	logLevel     string // Log verbosity level
	narrate      bool   // Narrate every scheduling action through the logger
	showTimeline bool   // Render a text occupancy chart after the run
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "batchsim",
	Short: "Tick-driven scheduling simulator for a batch machine with one CPU and one IO controller",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the batch simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		workload := sim.SampleWorkload()
		if workloadPath != "" {
			workload, err = sim.LoadWorkload(workloadPath)
			if err != nil {
				logrus.Fatalf("Unable to load workload: %v", err)
			}
		}

		engine := sim.NewEngine(workload)
		if narrate {
			engine.Observer = sim.LogrusObserver{}
		}

		logrus.Infof("Starting simulation with %d processes", len(workload))
		if err := engine.Run(); err != nil {
			logrus.Fatalf("Simulation aborted: %v", err)
		}

		engine.Metrics.Print()

		if showTimeline {
			intervals, err := timeline.Build(engine.Events())
			if err != nil {
				logrus.Fatalf("Event log is inconsistent: %v", err)
			}
			fmt.Print(timeline.Render(intervals))
		}
	},
}

// Execute is the external entry point into the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&workloadPath, "workload", "", "Path to a YAML workload file (default: built-in sample workload)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().BoolVar(&narrate, "narrate", false, "Narrate scheduling actions tick by tick")
	runCmd.Flags().BoolVar(&showTimeline, "timeline", false, "Render a text occupancy chart after the run")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
