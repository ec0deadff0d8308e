package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyShortfall(t *testing.T) {
	slots := []string{"08:00", "08:10", "08:20", "08:30"}
	days := []string{"Day1", "Day2"}

	tests := []struct {
		name            string
		usable          map[string]map[string]bool
		slotsPerSession int
		want            string
	}{
		{
			name:            "no availability at all",
			usable:          map[string]map[string]bool{},
			slotsPerSession: 1,
			want:            ReasonStructural,
		},
		{
			name: "fragmented availability",
			usable: map[string]map[string]bool{
				"Day1": {"08:00": true, "08:20": true},
			},
			slotsPerSession: 2,
			want:            ReasonStructural,
		},
		{
			name: "contiguous block exists on a later day",
			usable: map[string]map[string]bool{
				"Day1": {"08:00": true},
				"Day2": {"08:10": true, "08:20": true},
			},
			slotsPerSession: 2,
			want:            ReasonContention,
		},
		{
			name: "session longer than the whole day",
			usable: map[string]map[string]bool{
				"Day1": {"08:00": true, "08:10": true, "08:20": true, "08:30": true},
			},
			slotsPerSession: 5,
			want:            ReasonStructural,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifyShortfall(slots, days, tc.usable, tc.slotsPerSession))
		})
	}
}
