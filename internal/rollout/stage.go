package rollout

import (
	"log/slog"
	"time"
)

const (
	unassignedNodesShort   = "unassigned-nodes"
	unassignedVersionShort = "unassigned-version"
)

// evaluateStage is the Stage Evaluator (C5): given the resolved desired
// versions and one stage, it emits one Action per subnet the stage
// names (or one Action for the unassigned pool).
//
// Grounded on stage_checks.rs::check_stage and the wait_for_next_week
// handling inlined in stage_checks.rs::check_stages.
func evaluateStage(
	log *slog.Logger,
	stage Stage,
	desired DesiredReleaseVersion,
	fleet []SubnetState,
	unassignedVersion string,
	bake BakeSnapshot,
	proposals ProposalSnapshot,
	today Clock,
) ([]Action, error) {
	if stage.isUnassignedStage() {
		return evaluateUnassignedStage(log, desired, unassignedVersion, proposals.UnassignedUpdates)
	}

	if stage.WaitForNextWeek && !weekPassed(desired.ActiveRelease.StartDate, today.Today()) {
		actions := make([]Action, 0, len(stage.Subnets))
		for _, prefix := range stage.Subnets {
			actions = append(actions, waitForNextWeekAction(prefix))
		}
		return actions, nil
	}

	actions := make([]Action, 0, len(stage.Subnets))
	for _, prefix := range stage.Subnets {
		action, err := evaluateSubnet(log, prefix, stage.BakeTime, desired, fleet, bake, proposals.SubnetUpdates)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	return actions, nil
}

func evaluateUnassignedStage(
	log *slog.Logger,
	desired DesiredReleaseVersion,
	unassignedVersion string,
	proposals []UnassignedNodesProposal,
) ([]Action, error) {
	target := desired.Unassigned.ID

	if unassignedVersion == target {
		if log != nil {
			log.Debug("unassigned nodes already on desired version", "version", target)
		}
		return []Action{noopAction(unassignedNodesShort)}, nil
	}

	if p, ok := openUnassignedProposal(proposals, target); ok {
		if log != nil {
			log.Info("found open proposal for unassigned nodes", "proposalID", p.Info.ID, "version", target)
		}
		return []Action{pendingProposalAction(unassignedVersionShort, p.Info.ID)}, nil
	}

	if log != nil {
		log.Info("no open proposal for unassigned nodes, placing one", "version", target)
	}
	return []Action{placeProposalAction(true, "", target)}, nil
}

func evaluateSubnet(
	log *slog.Logger,
	prefix string,
	stageBake time.Duration,
	desired DesiredReleaseVersion,
	fleet []SubnetState,
	bake BakeSnapshot,
	proposals []SubnetUpdateProposal,
) (Action, error) {
	subnet, err := resolvePrefix(fleet, prefix)
	if err != nil {
		return Action{}, err
	}

	desiredVersion, ok := desired.PerSubnet[subnet.ID.String()]
	if !ok {
		return Action{}, newError(ErrorKindUnknownSubnet, "evaluateSubnet",
			"no desired version computed for subnet "+subnet.ID.String(), nil)
	}

	if log != nil {
		log.Debug("checking subnet against desired version", "subnet", prefix, "desired", desiredVersion.ID)
	}

	if subnet.CurrentVersion == desiredVersion.ID {
		remaining, err := remainingBakeTime(bake, subnet, stageBake)
		if err != nil {
			return Action{}, err
		}
		if remaining == 0 {
			if log != nil {
				log.Debug("subnet baked", "subnet", prefix)
			}
			return noopAction(prefix), nil
		}
		if log != nil {
			log.Debug("subnet baking", "subnet", prefix, "remaining", remaining)
		}
		return bakingAction(prefix, remaining), nil
	}

	if p, ok := openSubnetProposal(proposals, subnet.ID, desiredVersion.ID); ok {
		if log != nil {
			log.Info("found open proposal for subnet", "subnet", prefix, "proposalID", p.Info.ID)
		}
		return pendingProposalAction(prefix, p.Info.ID), nil
	}

	if log != nil {
		log.Info("no open proposal for subnet, placing one", "subnet", prefix, "version", desiredVersion.ID)
	}
	return placeProposalAction(false, subnet.ID.String(), desiredVersion.ID), nil
}
