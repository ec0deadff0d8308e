package dto

// BlackoutWindow marks a [start,end) wall-clock range removed from the
// slot grid. Entries with end <= start are discarded during
// normalization.
type BlackoutWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ClientRequest describes one entity (or group member) to schedule.
// Day keys in Availability may be bare indices ("3") or canonical day
// identifiers ("Day3").
type ClientRequest struct {
	Name                 string              `json:"name"`
	SessionsNeeded       int                 `json:"sessions_needed"`
	SessionLengthMinutes int                 `json:"session_length_minutes"`
	Tag                  string              `json:"tag"`
	SpacingRule          string              `json:"spacing_rule"`
	MaxPerDay            int                 `json:"max_per_day"`
	GroupID              string              `json:"group_id"`
	Availability         map[string][]string `json:"availability"`
}

// ResourceRequest declares a shared resource's daily session ceiling
// and per-day slot blackout.
type ResourceRequest struct {
	MaxSessionsPerDay int                 `json:"max_sessions_per_day"`
	Unavailable       map[string][]string `json:"unavailable"`
}

// GenerateTimetableRequest is the scheduling payload. Out-of-range
// values are clamped or defaulted by the engine, never rejected.
type GenerateTimetableRequest struct {
	CycleLength       int               `json:"cycle_length"`
	WorkdayStart      string            `json:"workday_start"`
	WorkdayEnd        string            `json:"workday_end"`
	SlotTemplate      string            `json:"slot_template"`
	MaxClientsPerSlot int               `json:"max_clients_per_slot"`
	Blackouts         []BlackoutWindow  `json:"blackouts"`
	Clients           []ClientRequest   `json:"clients" validate:"max=512,dive"`
	Resource          *ResourceRequest  `json:"resource"`
}

// ClientSummary reports the per-entity scheduling outcome. Group
// members each carry the group's aggregate numbers.
type ClientSummary struct {
	Needed        int    `json:"needed"`
	Scheduled     int    `json:"scheduled"`
	SessionLength int    `json:"session_length"`
	Reason        string `json:"reason,omitempty"`
}

// GenerateTimetableResponse carries the computed timetable.
type GenerateTimetableResponse struct {
	Days       []string                       `json:"days"`
	TimeSlots  []string                       `json:"time_slots"`
	Timetable  map[string]map[string][]string `json:"timetable"`
	Conflicts  []string                       `json:"conflicts"`
	Summary    map[string]ClientSummary       `json:"summary"`
	DisplayIDs map[string]int                 `json:"display_ids"`
}
