package rollout

// openSubnetProposal returns the first open (not-yet-executed)
// subnet-update proposal targeting (subnetID, targetVersion), if any.
//
// Grounded on stage_checks.rs::get_open_proposal_for_subnet.
func openSubnetProposal(proposals []SubnetUpdateProposal, subnetID SubnetID, targetVersion string) (SubnetUpdateProposal, bool) {
	for _, p := range proposals {
		if p.Info.Executed {
			continue
		}
		if !p.SubnetID.Equal(subnetID) {
			continue
		}
		if p.ReplicaVersionID != targetVersion {
			continue
		}
		return p, true
	}
	return SubnetUpdateProposal{}, false
}

// openUnassignedProposal returns the first open unassigned-nodes
// proposal whose payload targets targetVersion, if any.
//
// Grounded on the unassigned-proposal lookup inlined in
// stage_checks.rs::check_stage (lines 132-152).
func openUnassignedProposal(proposals []UnassignedNodesProposal, targetVersion string) (UnassignedNodesProposal, bool) {
	for _, p := range proposals {
		if p.Info.Executed {
			continue
		}
		if p.ReplicaVersion != targetVersion {
			continue
		}
		return p, true
	}
	return UnassignedNodesProposal{}, false
}
