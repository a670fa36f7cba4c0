package rollout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenSubnetProposal(t *testing.T) {
	s1 := mustSubnet(t, subnetTextS1)
	s2 := mustSubnet(t, subnetTextS2First)

	proposals := []SubnetUpdateProposal{
		{Info: ProposalInfo{ID: 1, Executed: true}, SubnetID: s1, ReplicaVersionID: vNew},
		{Info: ProposalInfo{ID: 2}, SubnetID: s1, ReplicaVersionID: vOld},
		{Info: ProposalInfo{ID: 3}, SubnetID: s1, ReplicaVersionID: vNew},
		{Info: ProposalInfo{ID: 4}, SubnetID: s2, ReplicaVersionID: vNew},
	}

	p, ok := openSubnetProposal(proposals, s1, vNew)
	require.True(t, ok)
	require.EqualValues(t, 3, p.Info.ID)

	_, ok = openSubnetProposal(proposals, s1, vFeat)
	require.False(t, ok)
}

func TestOpenUnassignedProposal(t *testing.T) {
	proposals := []UnassignedNodesProposal{
		{Info: ProposalInfo{ID: 1, Executed: true}, ReplicaVersion: vNew},
		{Info: ProposalInfo{ID: 2}, ReplicaVersion: vOld},
		{Info: ProposalInfo{ID: 3}, ReplicaVersion: vNew},
	}

	p, ok := openUnassignedProposal(proposals, vNew)
	require.True(t, ok)
	require.EqualValues(t, 3, p.Info.ID)

	_, ok = openUnassignedProposal(proposals, vFeat)
	require.False(t, ok)
}
