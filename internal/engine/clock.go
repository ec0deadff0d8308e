package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// parseClock converts an "HH:MM" label to minutes after midnight.
// Malformed labels resolve to 08:00; the engine corrects instead of
// rejecting.
func parseClock(s string) int {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 8 * 60
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil {
		return 8 * 60
	}
	return h*60 + m
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
