package engine

import "fmt"

// slotTemplate is a named preset for the day's slot grid. Presets are
// expressed as window builds so template output and ad hoc window
// output share one code path.
type slotTemplate struct {
	start     string
	end       string
	blackouts []Window
}

var slotTemplates = map[string]slotTemplate{
	"workday":    {start: "08:00", end: "17:00"},
	"school-day": {start: "08:00", end: "15:00", blackouts: []Window{{Start: "12:00", End: "13:00"}}},
	"half-day":   {start: "08:00", end: "12:00"},
}

// BuildSlots derives the ordered slot labels for one representative day.
// A named template, when recognised, overrides the workday window; an
// unknown template name falls through to the window build. Slot start
// times step by slotMinutes from start to end, skipping any time that
// falls inside a blackout. When end <= start the default workday window
// is substituted, so the builder never fails.
func BuildSlots(workdayStart, workdayEnd, template string, blackouts []Window, slotMinutes int) []string {
	if tpl, ok := slotTemplates[template]; ok {
		workdayStart, workdayEnd, blackouts = tpl.start, tpl.end, tpl.blackouts
	}

	start := parseClock(workdayStart)
	end := parseClock(workdayEnd)
	if end <= start {
		start = parseClock(defaultWorkdayStart)
		end = parseClock(defaultWorkdayEnd)
	}

	type span struct{ start, end int }
	ranges := make([]span, 0, len(blackouts))
	for _, b := range blackouts {
		if b.Start == "" || b.End == "" {
			continue
		}
		s, e := parseClock(b.Start), parseClock(b.End)
		if e > s {
			ranges = append(ranges, span{start: s, end: e})
		}
	}

	blacked := func(t int) bool {
		for _, r := range ranges {
			if r.start <= t && t < r.end {
				return true
			}
		}
		return false
	}

	var slots []string
	for t := start; t < end; t += slotMinutes {
		if !blacked(t) {
			slots = append(slots, formatClock(t))
		}
	}
	return slots
}

// cycleDays produces the ordered day identifiers Day1..DayN.
func cycleDays(cycleLength int) []string {
	days := make([]string, 0, cycleLength)
	for d := 1; d <= cycleLength; d++ {
		days = append(days, fmt.Sprintf("Day%d", d))
	}
	return days
}
