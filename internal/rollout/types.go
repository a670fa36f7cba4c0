// Package rollout implements the stage-checking decision engine for a
// staged, bake-gated fleet rollout: a pure function that, given a plan
// and a snapshot of world state, returns the next actions to advance
// the rollout.
package rollout

import (
	"strings"
	"time"
)

// Version is one buildable software version within a Release. A
// non-empty PinnedSubnets marks it a feature build: only subnets whose
// textual id starts with one of these prefixes should run it.
type Version struct {
	Name          string
	ID            string // hex commit / build id
	PinnedSubnets []string
}

// IsFeatureBuild reports whether this version is pinned to a subset of
// subnets rather than being the release's default build.
func (v Version) IsFeatureBuild() bool {
	return len(v.PinnedSubnets) > 0
}

// matches reports whether subnet id starts with one of v's pinned
// prefixes. A default build (no pinned prefixes) never "matches" here;
// callers fall back to position 0 explicitly.
func (v Version) matches(id SubnetID) bool {
	for _, prefix := range v.PinnedSubnets {
		if id.HasPrefix(prefix) {
			return true
		}
	}
	return false
}

// Release is one release candidate: an ordered set of versions, where
// position 0 is always the default/regular build and any further
// positions are feature builds pinned to specific subnets.
type Release struct {
	RCName    string
	StartDate time.Time // UTC midnight
	Versions  []Version
}

// defaultVersion is the release's position-0 build.
func (r Release) defaultVersion() Version {
	return r.Versions[0]
}

// versionFor returns the version this release assigns to subnet id: the
// first pinned version whose prefixes match, tie-broken by catalog
// order, else the default build.
func (r Release) versionFor(id SubnetID) Version {
	for _, v := range r.Versions {
		if v.IsFeatureBuild() && v.matches(id) {
			return v
		}
	}
	return r.defaultVersion()
}

// containsVersionID reports whether versionID names one of this
// release's versions.
func (r Release) containsVersionID(versionID string) bool {
	for _, v := range r.Versions {
		if v.ID == versionID {
			return true
		}
	}
	return false
}

// Stage is one step of the rollout: either a subnet stage (upgrade a
// named set of subnets together) or the unassigned-nodes stage. Exactly
// one of these shapes is populated; UpdateUnassignedNodes is the tag.
type Stage struct {
	// Subnet stage fields.
	Subnets         []string // short prefixes, resolved against the live fleet
	BakeTime        time.Duration
	WaitForNextWeek bool

	// Unassigned-nodes stage tag. When true, Subnets/BakeTime/
	// WaitForNextWeek are meaningless. ParsePlan rejects subnets or
	// wait_for_next_week on such a stage and ignores any bake_time, so
	// all three are zero in a parsed plan.
	UpdateUnassignedNodes bool
}

func (s Stage) isUnassignedStage() bool {
	return s.UpdateUnassignedNodes
}

// Rollout is the declarative, human-edited rollout plan.
type Rollout struct {
	Pause    bool
	SkipDays []time.Weekday
	Stages   []Stage
}

func (r Rollout) skips(day time.Weekday) bool {
	for _, d := range r.SkipDays {
		if d == day {
			return true
		}
	}
	return false
}

// Index is the full plan: the rollout definition plus the release
// catalog it drives, ordered newest-first.
type Index struct {
	Rollout  Rollout
	Releases []Release
}

// SubnetState is a live subnet observed in the fleet registry.
type SubnetState struct {
	ID             SubnetID `json:"id"`
	CurrentVersion string   `json:"current_version"`
}

// BakeSnapshot maps a subnet's textual id to the number of seconds it
// has been observed running its current version. A subnet missing from
// this map has unknown bake status.
type BakeSnapshot map[string]float64

// ProposalInfo is the governance metadata shared by both proposal kinds.
type ProposalInfo struct {
	ID       uint64 `json:"id"`
	Executed bool   `json:"executed"`
}

// SubnetUpdateProposal moves one subnet to one replica version.
type SubnetUpdateProposal struct {
	Info             ProposalInfo `json:"info"`
	SubnetID         SubnetID     `json:"subnet_id"`
	ReplicaVersionID string       `json:"replica_version_id"`
}

// UnassignedNodesProposal moves the unassigned-node pool to a replica
// version. ReplicaVersion is empty when the proposal's payload carries
// no version (treated as irrelevant to any target).
type UnassignedNodesProposal struct {
	Info           ProposalInfo `json:"info"`
	ReplicaVersion string       `json:"replica_version"`
}

// RegistrySnapshot is the external registry's view of the fleet at one
// instant: the live subnets and the version unassigned nodes currently
// run. Produced by a collaborator outside this package (spec.md §6.2).
type RegistrySnapshot struct {
	Subnets           []SubnetState `json:"subnets"`
	UnassignedVersion string        `json:"unassigned_version"`
}

// ProposalSnapshot is the external governance reader's view of open and
// recently-executed proposals (spec.md §6.2).
type ProposalSnapshot struct {
	SubnetUpdates     []SubnetUpdateProposal    `json:"subnet_updates"`
	UnassignedUpdates []UnassignedNodesProposal `json:"unassigned_updates"`
}

// Clock supplies "today" in UTC. Production code adapts a
// clockwork.Clock through ClockFromClockwork (see calendar.go); tests
// either wrap a clockwork fake clock the same way or use a fixed-day
// Clock.
type Clock interface {
	Today() time.Time
}

// World bundles every input to one Evaluate call besides the plan
// itself.
type World struct {
	Registry  RegistrySnapshot
	Bake      BakeSnapshot
	Proposals ProposalSnapshot
	Clock     Clock
}

// DesiredReleaseVersion is the per-call, discardable output of the
// Release Catalog Resolver (C1): the active release and the version
// each subnet (and the unassigned pool) should converge on.
type DesiredReleaseVersion struct {
	ActiveRelease Release
	PerSubnet     map[string]Version // keyed by subnet textual id
	Unassigned    Version
}

func normalizePrefix(prefix string) string {
	return strings.TrimSpace(prefix)
}
