package rollout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSubnetID_RoundTrip(t *testing.T) {
	id, err := ParseSubnetID(subnetTextS1)
	require.NoError(t, err)
	require.Equal(t, subnetTextS1, id.String())
}

func TestParseSubnetID_Invalid(t *testing.T) {
	_, err := ParseSubnetID("not valid base58 !!!")
	require.ErrorIs(t, err, ErrInvalidPlan)
}

func TestSubnetID_HasPrefix(t *testing.T) {
	id := mustSubnet(t, subnetTextS1)
	require.True(t, id.HasPrefix("nodea"))
	require.False(t, id.HasPrefix("nodeb"))
}

func TestSubnetID_Equal(t *testing.T) {
	a := mustSubnet(t, subnetTextS1)
	b := mustSubnet(t, subnetTextS1)
	c := mustSubnet(t, subnetTextS2First)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestSubnetID_JSONRoundTrip(t *testing.T) {
	id := mustSubnet(t, subnetTextS1)

	data, err := json.Marshal(id)
	require.NoError(t, err)
	require.Equal(t, `"`+subnetTextS1+`"`, string(data))

	var out SubnetID
	require.NoError(t, json.Unmarshal(data, &out))
	require.True(t, id.Equal(out))
}

func TestResolvePrefix_Unique(t *testing.T) {
	subnets := []SubnetState{
		{ID: mustSubnet(t, subnetTextS1)},
		{ID: mustSubnet(t, subnetTextS2First)},
	}
	got, err := resolvePrefix(subnets, "nodea")
	require.NoError(t, err)
	require.True(t, got.ID.Equal(mustSubnet(t, subnetTextS1)))
}

func TestResolvePrefix_NoMatch(t *testing.T) {
	subnets := []SubnetState{{ID: mustSubnet(t, subnetTextS1)}}
	_, err := resolvePrefix(subnets, "zzzzz")
	require.ErrorIs(t, err, ErrUnknownSubnet)
}

func TestResolvePrefix_Ambiguous(t *testing.T) {
	subnets := []SubnetState{
		{ID: mustSubnet(t, subnetTextDupA)},
		{ID: mustSubnet(t, subnetTextDupB)},
	}
	_, err := resolvePrefix(subnets, "dupes")
	require.ErrorIs(t, err, ErrAmbiguousPrefix)
}
