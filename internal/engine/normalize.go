package engine

import "strings"

// Normalize sanitizes a raw request into a Problem. This is the only
// stage permitted to apply defaults and clamps: the placement algorithm
// downstream assumes every value is already in range. Entities with
// empty names are dropped silently; everything else is corrected, never
// rejected.
func Normalize(req Request, params Params) *Problem {
	params = params.withDefaults()

	cycleLength := req.CycleLength
	if cycleLength == 0 {
		cycleLength = defaultCycleLength
	}
	cycleLength = clamp(cycleLength, minCycleLength, maxCycleLength)

	capacity := req.MaxClientsPerSlot
	if capacity == 0 {
		capacity = minSlotCapacity
	}
	capacity = clamp(capacity, minSlotCapacity, maxSlotCapacity)

	workdayStart := req.WorkdayStart
	if workdayStart == "" {
		workdayStart = defaultWorkdayStart
	}
	workdayEnd := req.WorkdayEnd
	if workdayEnd == "" {
		workdayEnd = defaultWorkdayEnd
	}

	days := cycleDays(cycleLength)
	slots := BuildSlots(workdayStart, workdayEnd, req.SlotTemplate, req.Blackouts, params.SlotMinutes)

	clients := make([]Client, 0, len(req.Clients))
	displayIDs := make(map[string]int, len(req.Clients))
	for idx, raw := range req.Clients {
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			continue
		}
		// Display ids key off the entity's position in the original
		// input, so dropped entries still consume an index.
		displayIDs[name] = idx % params.PaletteSize

		needed := raw.SessionsNeeded
		if needed < 0 {
			needed = 0
		}
		length := raw.SessionLengthMinutes
		if length <= 0 {
			length = params.SlotMinutes
		}
		maxPerDay := raw.MaxPerDay
		if maxPerDay < 1 {
			maxPerDay = 0
		}
		clients = append(clients, Client{
			Name:                 name,
			SessionsNeeded:       needed,
			SessionLengthMinutes: length,
			Tag:                  raw.Tag,
			Spacing:              normalizeSpacing(raw.SpacingRule),
			MaxPerDay:            maxPerDay,
			GroupID:              raw.GroupID,
			Availability:         raw.Availability,
		})
	}

	return &Problem{
		Days:        days,
		Slots:       slots,
		Capacity:    capacity,
		SlotMinutes: params.SlotMinutes,
		PaletteSize: params.PaletteSize,
		Clients:     clients,
		Resource:    normalizeResource(req.Resource),
		DisplayIDs:  displayIDs,
	}
}

func normalizeResource(raw *ResourceInput) *Resource {
	if raw == nil {
		return nil
	}
	res := &Resource{Unavailable: make(map[string]map[string]bool)}
	if raw.MaxSessionsPerDay > 0 {
		res.MaxPerDay = raw.MaxSessionsPerDay
	}
	for key, labels := range raw.Unavailable {
		day := canonicalDay(key)
		for _, label := range labels {
			if res.Unavailable[day] == nil {
				res.Unavailable[day] = make(map[string]bool)
			}
			res.Unavailable[day][label] = true
		}
	}
	if res.MaxPerDay == 0 && len(res.Unavailable) == 0 {
		return nil
	}
	return res
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
