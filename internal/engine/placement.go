package engine

// grid is the single mutable structure of a run: day -> slot -> ordered
// occupant names. Occupant order is booking order. Slot keys are fixed
// once built; placement only appends occupants.
type grid struct {
	capacity int
	cells    map[string]map[string][]string
}

func newGrid(days, slots []string, capacity int) *grid {
	cells := make(map[string]map[string][]string, len(days))
	for _, day := range days {
		row := make(map[string][]string, len(slots))
		for _, slot := range slots {
			row[slot] = []string{}
		}
		cells[day] = row
	}
	return &grid{capacity: capacity, cells: cells}
}

func (g *grid) occupancy(day, slot string) int {
	return len(g.cells[day][slot])
}

// book appends the name unless it already occupies the slot.
func (g *grid) book(day, slot, name string) {
	for _, existing := range g.cells[day][slot] {
		if existing == name {
			return
		}
	}
	g.cells[day][slot] = append(g.cells[day][slot], name)
}

// placementHistory is the per-unit ephemeral spacing state.
type placementHistory struct {
	usedDays    map[string]bool
	usedDayIdxs []int
	perDay      map[string]int
}

func newPlacementHistory() *placementHistory {
	return &placementHistory{
		usedDays: make(map[string]bool),
		perDay:   make(map[string]int),
	}
}

func (h *placementHistory) adjacentTo(dayIdx int) bool {
	for _, used := range h.usedDayIdxs {
		diff := dayIdx - used
		if diff < 0 {
			diff = -diff
		}
		if diff <= 1 {
			return true
		}
	}
	return false
}

// placer runs the greedy first-fit search for one invocation. All units
// share the grid and the resource day-load counters; units are placed
// strictly sequentially.
type placer struct {
	problem         *Problem
	grid            *grid
	resourceDayLoad map[string]int
}

func newPlacer(p *Problem) *placer {
	return &placer{
		problem:         p,
		grid:            newGrid(p.Days, p.Slots, p.Capacity),
		resourceDayLoad: make(map[string]int),
	}
}

// placeUnit books session blocks for the unit until demand is met or
// the first session that cannot be placed. Earlier bookings are kept on
// failure; the returned reason is empty when the unit is fully placed.
func (p *placer) placeUnit(u *Unit) (scheduled int, reason string) {
	slotsPerSession := (u.SessionLength + p.problem.SlotMinutes - 1) / p.problem.SlotMinutes
	if slotsPerSession < 1 {
		slotsPerSession = 1
	}

	hist := newPlacementHistory()
	for session := 0; session < u.Needed; session++ {
		day, dayIdx, start, ok := p.findWindow(u, hist, slotsPerSession)
		if !ok {
			return scheduled, classifyShortfall(p.problem.Slots, p.problem.Days, u.Usable, slotsPerSession)
		}
		p.bookWindow(u, day, start, slotsPerSession)
		hist.usedDays[day] = true
		hist.usedDayIdxs = append(hist.usedDayIdxs, dayIdx)
		hist.perDay[day]++
		p.resourceDayLoad[day]++
		scheduled++
	}
	return scheduled, ""
}

// findWindow scans days in cycle order and, within the first day that
// survives the gating checks and holds a feasible window, slot windows
// in index order. First feasible day and window win; there is no
// look-ahead and no backtracking.
func (p *placer) findWindow(u *Unit, hist *placementHistory, slotsPerSession int) (day string, dayIdx, start int, ok bool) {
	res := p.problem.Resource
	for idx, candidate := range p.problem.Days {
		if u.Spacing == SpacingOncePerDay && hist.usedDays[candidate] {
			continue
		}
		if u.Spacing == SpacingNoConsecutiveDays && hist.adjacentTo(idx) {
			continue
		}
		if u.Solo && u.MaxPerDay > 0 && hist.perDay[candidate] >= u.MaxPerDay {
			continue
		}
		if u.Solo && res != nil && res.MaxPerDay > 0 && p.resourceDayLoad[candidate] >= res.MaxPerDay {
			continue
		}
		usable := u.Usable[candidate]
		if len(usable) == 0 {
			continue
		}
		if at, found := p.scanWindows(candidate, usable, u.Size(), slotsPerSession); found {
			return candidate, idx, at, true
		}
	}
	return "", 0, 0, false
}

// scanWindows slides a window of slotsPerSession consecutive index
// positions over the day's slot list. Contiguity is defined over index
// positions in the blackout-filtered list, not wall-clock adjacency.
func (p *placer) scanWindows(day string, usable map[string]bool, size, slotsPerSession int) (int, bool) {
	slots := p.problem.Slots
	res := p.problem.Resource
	for start := 0; start+slotsPerSession <= len(slots); start++ {
		feasible := true
		for _, slot := range slots[start : start+slotsPerSession] {
			if !usable[slot] {
				feasible = false
				break
			}
			if p.grid.occupancy(day, slot)+size > p.grid.capacity {
				feasible = false
				break
			}
			if res != nil && res.Unavailable[day][slot] {
				feasible = false
				break
			}
		}
		if feasible {
			return start, true
		}
	}
	return 0, false
}

// bookWindow commits every slot of the window for every member. The
// caller has already verified feasibility, so the block is applied
// whole: group bookings are all-or-nothing.
func (p *placer) bookWindow(u *Unit, day string, start, slotsPerSession int) {
	for _, slot := range p.problem.Slots[start : start+slotsPerSession] {
		for _, member := range u.Members {
			p.grid.book(day, slot, member.Name)
		}
	}
}
