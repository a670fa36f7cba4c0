// Command rolloutctl drives the rollout decision engine against a plan
// file and a world-snapshot fixture, printing the actions it would take.
// It does not talk to any registry, governance program, or telemetry
// source: those collaborators are out of scope for this repository
// (spec.md §1). Point it at recorded or hand-written snapshots to see
// what the engine would decide.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dfinity/rollout-controller/internal/config"
	"github.com/dfinity/rollout-controller/internal/runner"
)

var (
	planPath     = flag.String("plan", "", "path to the rollout plan YAML file")
	snapshotPath = flag.String("snapshot", "", "path to the world snapshot JSON file")
	interval     = flag.Duration("interval", 0, "re-evaluate on this interval; 0 runs once and exits")
	verbose      = flag.Bool("verbose", false, "enable debug logging")
	showVersion  = flag.Bool("version", false, "print version and exit")

	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("version: %s, commit: %s, date: %s\n", version, commit, date)
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if *planPath == "" || *snapshotPath == "" {
		log.Error("missing required flag", "flags", "-plan and -snapshot are both required")
		flag.Usage()
		os.Exit(1)
	}

	r, err := runner.New(&config.Config{
		Logger:       log,
		PlanPath:     *planPath,
		SnapshotPath: *snapshotPath,
		Interval:     *interval,
		Verbose:      *verbose,
	}, nil)
	if err != nil {
		log.Error("failed to create runner", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := r.Run(ctx); err != nil {
		log.Error("runtime error", "error", err)
		os.Exit(1)
	}
}
