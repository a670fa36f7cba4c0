package rollout

// resolveDesiredVersions is the Release Catalog Resolver (C1). Given the
// live fleet and the ordered (newest-first) release catalog, it computes
// the single DesiredReleaseVersion for this call: which release is
// active, and which version each subnet and the unassigned pool should
// converge on.
//
// Grounded on stage_checks.rs::desired_rollout_release_version.
func resolveDesiredVersions(subnets []SubnetState, releases []Release) (DesiredReleaseVersion, error) {
	if len(releases) == 0 {
		return DesiredReleaseVersion{}, newError(ErrorKindEmptyReleaseCatalog, "resolveDesiredVersions",
			"release catalog is empty", nil)
	}

	// Find, for each subnet, which release its current version belongs
	// to, deduplicating in the order the subnets are encountered.
	var inUse []int // indices into releases, in subnet encounter order
	seen := make(map[int]bool)
	for _, s := range subnets {
		idx, err := releaseIndexForVersion(releases, s.CurrentVersion)
		if err != nil {
			return DesiredReleaseVersion{}, newError(ErrorKindUnknownSubnet, "resolveDesiredVersions",
				"subnet "+s.ID.String()+" runs a version not present in any catalog release", err)
		}
		if !seen[idx] {
			seen[idx] = true
			inUse = append(inUse, idx)
		}
	}

	if len(inUse) == 0 {
		return DesiredReleaseVersion{}, newError(ErrorKindUnknownSubnet, "resolveDesiredVersions",
			"fleet has no subnets", nil)
	}

	if len(inUse) > 2 {
		return DesiredReleaseVersion{}, newError(ErrorKindTooManyActiveReleases, "resolveDesiredVersions",
			"fleet spans more than two releases", nil)
	}

	// releases is newest-first, so the smallest index is the newest
	// release in use.
	newestInUse := inUse[0]
	for _, idx := range inUse[1:] {
		if idx < newestInUse {
			newestInUse = idx
		}
	}

	activeIdx := newestInUse
	if len(inUse) == 1 {
		// Only one release in use: the active target is the one
		// immediately newer in the catalog, saturating at index 0 (the
		// terminal "rollout completed" case when the fleet already runs
		// the newest release — spec.md §9 Open Question (a)).
		if newestInUse > 0 {
			activeIdx = newestInUse - 1
		}
	}
	active := releases[activeIdx]

	perSubnet := make(map[string]Version, len(subnets))
	for _, s := range subnets {
		perSubnet[s.ID.String()] = active.versionFor(s.ID)
	}

	return DesiredReleaseVersion{
		ActiveRelease: active,
		PerSubnet:     perSubnet,
		Unassigned:    active.defaultVersion(),
	}, nil
}

// releaseIndexForVersion returns the index of the release containing
// versionID.
func releaseIndexForVersion(releases []Release, versionID string) (int, error) {
	for i, r := range releases {
		if r.containsVersionID(versionID) {
			return i, nil
		}
	}
	return 0, newError(ErrorKindUnknownSubnet, "releaseIndexForVersion",
		"version \""+versionID+"\" not found in any catalog release", nil)
}
