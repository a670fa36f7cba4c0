package rollout

import "log/slog"

// Evaluate is the Rollout Driver (C6) and the engine's single entry
// point: given a plan and a snapshot of world state, it returns the
// actions needed to advance the rollout by exactly one stage, or an
// empty slice if the rollout is paused, today is a skip day, or every
// stage is already complete.
//
// Evaluate is pure, synchronous, and holds no state between calls
// (spec.md §5). Logger may be nil; when non-nil it receives tracing
// output the way device-health-oracle/funder thread an optional
// *slog.Logger through their tick loops.
//
// Grounded on stage_checks.rs::check_stages.
func Evaluate(plan Index, world World, logger *slog.Logger) ([]Action, error) {
	if plan.Rollout.Pause {
		if logger != nil {
			logger.Info("rollout paused, no actions")
		}
		return nil, nil
	}

	today := world.Clock.Today()
	if dayIsSkipped(plan.Rollout, today) {
		if logger != nil {
			logger.Info("today is a skip day, no actions", "weekday", today.Weekday())
		}
		return nil, nil
	}

	desired, err := resolveDesiredVersions(world.Registry.Subnets, plan.Releases)
	if err != nil {
		return nil, err
	}

	for i, stage := range plan.Rollout.Stages {
		if logger != nil {
			logger.Info("checking stage", "index", i)
		}

		actions, err := evaluateStage(
			logger,
			stage,
			desired,
			world.Registry.Subnets,
			world.Registry.UnassignedVersion,
			world.Bake,
			world.Proposals,
			world.Clock,
		)
		if err != nil {
			return nil, err
		}

		if !allNoop(actions) {
			return actions, nil
		}

		if logger != nil {
			logger.Info("stage completed", "index", i)
		}
	}

	if logger != nil {
		logger.Info("rollout completed", "rcName", desired.ActiveRelease.RCName)
	}
	return nil, nil
}
