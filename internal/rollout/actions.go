package rollout

import "time"

// ActionKind tags which variant of Action is populated. The engine
// never emits more than one Action per subnet (or per unassigned pool)
// per call, and never mixes fields across kinds.
type ActionKind string

const (
	// ActionNoop means the subnet (or unassigned pool) already
	// satisfies this stage.
	ActionNoop ActionKind = "noop"
	// ActionBaking means the subnet is on the desired version but has
	// not yet accumulated the stage's required bake time.
	ActionBaking ActionKind = "baking"
	// ActionPendingProposal means an open governance proposal already
	// targets the desired (subnet, version) pair.
	ActionPendingProposal ActionKind = "pending_proposal"
	// ActionPlaceProposal means the caller should submit a new
	// governance proposal for the desired version.
	ActionPlaceProposal ActionKind = "place_proposal"
	// ActionWaitForNextWeek means a wait_for_next_week stage has not
	// yet crossed a week boundary since the release started.
	ActionWaitForNextWeek ActionKind = "wait_for_next_week"
)

// Action is the closed, tagged description of what the caller should do
// next for one subnet or for the unassigned-node pool (spec.md §4.7).
type Action struct {
	Kind ActionKind

	// SubnetShort is the prefix (or "unassigned-nodes" /
	// "unassigned-version") this action concerns. Populated for every
	// kind except ActionPlaceProposal, which instead carries the full
	// subnet principal.
	SubnetShort string

	// Remaining is populated only for ActionBaking.
	Remaining time.Duration

	// ProposalID is populated only for ActionPendingProposal.
	ProposalID uint64

	// IsUnassigned, SubnetPrincipal, and Version are populated only for
	// ActionPlaceProposal.
	IsUnassigned    bool
	SubnetPrincipal string
	Version         string
}

func noopAction(subnetShort string) Action {
	return Action{Kind: ActionNoop, SubnetShort: subnetShort}
}

func bakingAction(subnetShort string, remaining time.Duration) Action {
	return Action{Kind: ActionBaking, SubnetShort: subnetShort, Remaining: remaining}
}

func pendingProposalAction(subnetShort string, proposalID uint64) Action {
	return Action{Kind: ActionPendingProposal, SubnetShort: subnetShort, ProposalID: proposalID}
}

func placeProposalAction(isUnassigned bool, subnetPrincipal, version string) Action {
	return Action{
		Kind:            ActionPlaceProposal,
		IsUnassigned:    isUnassigned,
		SubnetPrincipal: subnetPrincipal,
		Version:         version,
	}
}

func waitForNextWeekAction(subnetShort string) Action {
	return Action{Kind: ActionWaitForNextWeek, SubnetShort: subnetShort}
}

// allNoop reports whether every action in actions is a Noop, i.e. the
// stage that produced them is complete (spec.md §4.6).
func allNoop(actions []Action) bool {
	for _, a := range actions {
		if a.Kind != ActionNoop {
			return false
		}
	}
	return true
}
