// Package engine implements the slot-grid construction and
// constraint-based placement core: a greedy first-fit search that books
// recurring session blocks for solo entities and atomic groups onto a
// shared capacity-bounded grid. The engine is pure and synchronous;
// identical problems yield identical results.
package engine

import (
	"fmt"
	"strings"
)

// Solve places every scheduling unit onto the grid and assembles the
// final result. Shortfalls are outcomes, not errors: the call always
// completes with a best-effort timetable.
func Solve(p *Problem) *Result {
	placer := newPlacer(p)
	conflicts := []string{}
	summary := make(map[string]ClientSummary)

	units := buildUnits(p)
	for i := range units {
		unit := &units[i]
		if unit.Needed <= 0 {
			continue
		}
		scheduled, reason := placer.placeUnit(unit)
		if scheduled < unit.Needed {
			conflicts = append(conflicts, conflictLine(unit, scheduled, reason))
		}
		for _, member := range unit.Members {
			summary[member.Name] = ClientSummary{
				Needed:        unit.Needed,
				Scheduled:     scheduled,
				SessionLength: unit.SessionLength,
				Reason:        reason,
			}
		}
	}

	return &Result{
		Days:       p.Days,
		Slots:      p.Slots,
		Grid:       placer.grid.cells,
		Conflicts:  conflicts,
		Summary:    summary,
		DisplayIDs: p.DisplayIDs,
	}
}

func conflictLine(u *Unit, scheduled int, reason string) string {
	var msg string
	if u.Solo {
		msg = fmt.Sprintf("Unable to fully schedule %s: needed %d, scheduled %d.", u.Key, u.Needed, scheduled)
	} else {
		names := make([]string, 0, len(u.Members))
		for _, m := range u.Members {
			names = append(names, m.Name)
		}
		msg = fmt.Sprintf("Unable to fully schedule group %s (%s): needed %d, scheduled %d.",
			u.Key, strings.Join(names, ", "), u.Needed, scheduled)
	}
	if reason != "" {
		msg += " Reason: " + reason
	}
	return msg
}
