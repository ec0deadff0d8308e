package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSlotsStepsByGranularity(t *testing.T) {
	slots := BuildSlots("08:00", "09:00", "", nil, 10)
	assert.Equal(t, []string{"08:00", "08:10", "08:20", "08:30", "08:40", "08:50"}, slots)
}

func TestBuildSlotsFiltersBlackouts(t *testing.T) {
	slots := BuildSlots("08:00", "10:00", "", []Window{{Start: "08:30", End: "09:00"}}, 10)
	assert.NotContains(t, slots, "08:30")
	assert.NotContains(t, slots, "08:40")
	assert.NotContains(t, slots, "08:50")
	assert.Contains(t, slots, "08:20")
	assert.Contains(t, slots, "09:00")
	assert.Len(t, slots, 9)
}

func TestBuildSlotsInvertedWindowFallsBack(t *testing.T) {
	slots := BuildSlots("17:00", "09:00", "", nil, 10)
	require.NotEmpty(t, slots)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "16:50", slots[len(slots)-1])
	assert.Len(t, slots, 54)
}

func TestBuildSlotsDiscardsInvertedBlackouts(t *testing.T) {
	slots := BuildSlots("08:00", "09:00", "", []Window{{Start: "09:00", End: "08:00"}}, 10)
	assert.Len(t, slots, 6)
}

func TestBuildSlotsNamedTemplate(t *testing.T) {
	slots := BuildSlots("", "", "school-day", nil, 10)
	require.NotEmpty(t, slots)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "14:50", slots[len(slots)-1])
	assert.NotContains(t, slots, "12:00")
	assert.NotContains(t, slots, "12:50")
	assert.Contains(t, slots, "13:00")
}

func TestBuildSlotsUnknownTemplateUsesWindow(t *testing.T) {
	slots := BuildSlots("08:00", "08:30", "does-not-exist", nil, 10)
	assert.Equal(t, []string{"08:00", "08:10", "08:20"}, slots)
}

func TestCycleDays(t *testing.T) {
	assert.Equal(t, []string{"Day1", "Day2", "Day3"}, cycleDays(3))
}
