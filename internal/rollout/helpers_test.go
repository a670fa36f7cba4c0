package rollout

import (
	"testing"
	"time"
)

// Base58 subnet principals used across the test suite. Each one was
// generated offline so its textual form starts with a fixed 5-character
// prefix, the same way real subnet principals happen to have readable
// prefixes; the exact principal bytes don't matter to any test.
const (
	subnetTextS1      = "nodeaXsTwWEaAw6cU7Npeg9pactf3wTW47ZxGqkKGYs"
	subnetTextS2First = "nodebNagTmZFCBsUbMWzvFvewXnFpVPxS2GHUK3hd2L"
	subnetTextS2Scnd  = "nodecvUBKQ3mgWmUDuyn7svRnhFGAeN9RcngJUKwvk2"
	subnetTextS4      = "nodedTwFEAKybZ37k2rcfKSB4rVGqUFihA8nGPXyudB"
	subnetTextExtra   = "nodeetKbFCgE1M6DN5t8ptqpappBdQkGyBNiurvAF9h"
	subnetTextDupA    = "dupesKynSfqJUnave9DTLbdAVq9KY15cMz8D4PRzJ8C"
	subnetTextDupB    = "dupesBuXtjAZXRYScQqaQK8q4XhcZJ9CMoQuiAHwXTh"
)

func mustSubnet(t *testing.T, text string) SubnetID {
	t.Helper()
	id, err := ParseSubnetID(text)
	if err != nil {
		t.Fatalf("ParseSubnetID(%q): %v", text, err)
	}
	return id
}

const (
	vOld  = "d34dbeef01"
	vNew  = "d34dbeef02"
	vFeat = "d34dbeef03"
)

// seedReleases builds the two-release catalog the seed scenarios share:
// an older release running vOld and a newer one running vNew. When
// pinFeature is set, the newer release also carries a feature build
// (vFeat) pinned to subnets "nodea" and "nodeb".
func seedReleases(pinFeature bool) []Release {
	newVersions := []Version{{Name: "regular", ID: vNew}}
	if pinFeature {
		newVersions = []Version{
			{Name: "regular", ID: vNew},
			{Name: "feature", ID: vFeat, PinnedSubnets: []string{"nodea", "nodeb"}},
		}
	}
	return []Release{
		{RCName: "rc-100", StartDate: utcDate(2024, 1, 3), Versions: newVersions},
		{RCName: "rc-99", StartDate: utcDate(2023, 12, 1), Versions: []Version{{Name: "regular", ID: vOld}}},
	}
}

// seedRollout builds the four-stage plan shared by the seed scenarios:
// S1=[nodea] bake 8h, S2=[nodeb,nodec] bake 4h, S3=unassigned,
// S4=[noded] bake 4h wait_for_next_week.
func seedRollout() Rollout {
	return Rollout{
		Stages: []Stage{
			{Subnets: []string{"nodea"}, BakeTime: 8 * time.Hour},
			{Subnets: []string{"nodeb", "nodec"}, BakeTime: 4 * time.Hour},
			{UpdateUnassignedNodes: true},
			{Subnets: []string{"noded"}, BakeTime: 4 * time.Hour, WaitForNextWeek: true},
		},
	}
}

func utcDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// fixedClock is a Clock that always reports the same day, used wherever
// a test needs a specific "today" without pulling in clockwork.
type fixedClock time.Time

func (f fixedClock) Today() time.Time {
	return time.Time(f)
}
