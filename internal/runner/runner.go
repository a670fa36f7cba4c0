// Package runner wires the rollout decision engine into a tick loop,
// the same shape as the teacher's device-health-oracle and funder
// workers: re-read inputs, evaluate, log the result, repeat. It does
// not execute any action — submitting PlaceProposal actions to
// governance remains an out-of-scope collaborator (spec.md §1).
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dfinity/rollout-controller/internal/config"
	"github.com/dfinity/rollout-controller/internal/rollout"
)

// Runner ticks the rollout engine on an interval, re-reading the plan
// and world snapshot from disk every time (grounded on
// device-health-oracle/internal/worker.Worker.Run and
// funder/internal/funder.Funder.Run).
type Runner struct {
	log   *slog.Logger
	cfg   *config.Config
	clock clockwork.Clock
}

// New validates cfg and returns a Runner. clock defaults to the real
// wall clock; tests may inject clockwork.NewFakeClock().
func New(cfg *config.Config, clock clockwork.Clock) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Runner{log: cfg.Logger, cfg: cfg, clock: clock}, nil
}

// Run evaluates once immediately, then every cfg.Interval until ctx is
// canceled. If cfg.Interval is zero, it evaluates once and returns.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.tick(); err != nil {
		return err
	}
	if r.cfg.Interval == 0 {
		return nil
	}

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info("runner stopped")
			return nil
		case <-ticker.C:
			if err := r.tick(); err != nil {
				r.log.Error("tick failed", "error", err)
			}
		}
	}
}

func (r *Runner) tick() error {
	planBytes, err := os.ReadFile(r.cfg.PlanPath)
	if err != nil {
		return fmt.Errorf("reading plan: %w", err)
	}
	plan, err := rollout.ParsePlan(planBytes)
	if err != nil {
		return fmt.Errorf("parsing plan: %w", err)
	}

	snapshotBytes, err := os.ReadFile(r.cfg.SnapshotPath)
	if err != nil {
		return fmt.Errorf("reading world snapshot: %w", err)
	}
	snapshot, err := rollout.ParseWorldSnapshot(snapshotBytes)
	if err != nil {
		return fmt.Errorf("parsing world snapshot: %w", err)
	}

	world := snapshot.World(rollout.ClockFromClockwork(r.clock))

	actions, err := rollout.Evaluate(plan, world, r.log)
	if err != nil {
		return fmt.Errorf("evaluating rollout: %w", err)
	}

	if len(actions) == 0 {
		r.log.Info("no actions")
		return nil
	}
	for _, a := range actions {
		r.log.Info("action",
			"kind", a.Kind,
			"subnet", a.SubnetShort,
			"remaining", a.Remaining,
			"proposalID", a.ProposalID,
			"isUnassigned", a.IsUnassigned,
			"subnetPrincipal", a.SubnetPrincipal,
			"version", a.Version,
		)
	}
	return nil
}
