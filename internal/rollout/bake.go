package rollout

import "time"

// remainingBakeTime is the Bake Clock (C2). Given the number of seconds
// a subnet has been observed running its current version and the
// stage's required bake time, it returns how much longer the subnet
// must bake (zero if already satisfied).
//
// observed is an opaque scalar supplied by the caller; this function
// does not interpret "subnet on the wrong version, high observed value"
// — the caller of the Bake Clock is responsible for only supplying
// samples that belong to the subnet's current version (spec.md §4.2).
//
// Grounded on stage_checks.rs::get_remaining_bake_time_for_subnet.
func remainingBakeTime(bake BakeSnapshot, subnet SubnetState, stageBake time.Duration) (time.Duration, error) {
	observedSeconds, ok := bake[subnet.ID.String()]
	if !ok {
		return 0, newError(ErrorKindUnknownBake, "remainingBakeTime",
			"no bake sample for subnet "+subnet.ID.String(), nil)
	}

	observed := time.Duration(observedSeconds * float64(time.Second))
	if observed >= stageBake {
		return 0, nil
	}
	return stageBake - observed, nil
}
