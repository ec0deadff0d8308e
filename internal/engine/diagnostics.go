package engine

// Shortfall diagnostics. Exactly one class applies per unmet unit; no
// finer root cause is reported.
const (
	ReasonStructural = "Not enough contiguous availability to fit full sessions."
	ReasonContention = "Available blocks exist but are filled or blocked by spacing/capacity rules."
)

// classifyShortfall explains why a unit fell short. Structural: no day
// holds a contiguous index-run of slotsPerSession slots inside the
// unit's usable set, so a full session could never fit regardless of
// load. Contention: such a block exists somewhere, but every instance
// was taken by capacity or blocked by spacing/day-cap rules.
func classifyShortfall(slots, days []string, usable map[string]map[string]bool, slotsPerSession int) string {
	for _, day := range days {
		avail := usable[day]
		if len(avail) == 0 {
			continue
		}
		for start := 0; start+slotsPerSession <= len(slots); start++ {
			fits := true
			for _, slot := range slots[start : start+slotsPerSession] {
				if !avail[slot] {
					fits = false
					break
				}
			}
			if fits {
				return ReasonContention
			}
		}
	}
	return ReasonStructural
}
