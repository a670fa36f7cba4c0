package rollout

import "encoding/json"

// WorldSnapshot is the on-disk JSON shape combining everything Evaluate
// needs besides a Clock and the plan: the registry, bake, and proposal
// snapshots a real deployment would otherwise assemble from three
// separate collaborators (spec.md §6.2). cmd/rolloutctl uses this to
// demonstrate the engine against fixture data without implementing any
// of those out-of-scope collaborators itself.
type WorldSnapshot struct {
	Registry  RegistrySnapshot `json:"registry"`
	Bake      BakeSnapshot     `json:"bake"`
	Proposals ProposalSnapshot `json:"proposals"`
}

// ParseWorldSnapshot decodes a WorldSnapshot from JSON bytes.
func ParseWorldSnapshot(data []byte) (WorldSnapshot, error) {
	var s WorldSnapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return WorldSnapshot{}, newError(ErrorKindInvalidPlan, "ParseWorldSnapshot", "malformed world snapshot", err)
	}
	if s.Bake == nil {
		s.Bake = BakeSnapshot{}
	}
	return s, nil
}

// World builds a World from this snapshot, pairing it with clock.
func (s WorldSnapshot) World(clock Clock) World {
	return World{
		Registry:  s.Registry,
		Bake:      s.Bake,
		Proposals: s.Proposals,
		Clock:     clock,
	}
}
