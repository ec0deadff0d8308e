package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUnitsGroupsBeforeSolos(t *testing.T) {
	problem := Normalize(Request{Clients: []ClientInput{
		{Name: "solo-1", SessionsNeeded: 1},
		{Name: "g2-a", SessionsNeeded: 1, GroupID: "G2"},
		{Name: "g1-a", SessionsNeeded: 1, GroupID: "G1"},
		{Name: "solo-2", SessionsNeeded: 1},
		{Name: "g2-b", SessionsNeeded: 1, GroupID: "G2"},
	}}, Params{})

	units := buildUnits(problem)
	require.Len(t, units, 4)

	// Groups first in group-id first-seen order, then solos in input order.
	assert.Equal(t, "G2", units[0].Key)
	assert.Equal(t, "G1", units[1].Key)
	assert.Equal(t, "solo-1", units[2].Key)
	assert.Equal(t, "solo-2", units[3].Key)

	assert.False(t, units[0].Solo)
	assert.Len(t, units[0].Members, 2)
	assert.True(t, units[2].Solo)
}

func TestBuildUnitsGroupUsesRepresentativeMember(t *testing.T) {
	problem := Normalize(Request{Clients: []ClientInput{
		{Name: "a", SessionsNeeded: 3, SessionLengthMinutes: 30, SpacingRule: "once_per_day", GroupID: "G1",
			Availability: map[string][]string{"Day1": {"08:00"}}},
		{Name: "b", SessionsNeeded: 9, SessionLengthMinutes: 60, GroupID: "G1",
			Availability: map[string][]string{"Day1": {"08:00"}}},
	}}, Params{})

	units := buildUnits(problem)
	require.Len(t, units, 1)
	assert.Equal(t, 3, units[0].Needed)
	assert.Equal(t, 30, units[0].SessionLength)
	assert.Equal(t, SpacingOncePerDay, units[0].Spacing)
	assert.Equal(t, 2, units[0].Size())
	assert.True(t, units[0].Usable["Day1"]["08:00"])
}
