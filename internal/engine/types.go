package engine

// Default tunables. They are injected via Params so the engine carries
// no package-level mutable state.
const (
	DefaultSlotMinutes = 10
	DefaultPaletteSize = 8

	minCycleLength  = 1
	maxCycleLength  = 20
	minSlotCapacity = 1
	maxSlotCapacity = 50

	defaultCycleLength  = 6
	defaultWorkdayStart = "08:00"
	defaultWorkdayEnd   = "17:00"
)

// Params carries the fixed, read-only engine configuration.
type Params struct {
	SlotMinutes int
	PaletteSize int
}

func (p Params) withDefaults() Params {
	if p.SlotMinutes <= 0 {
		p.SlotMinutes = DefaultSlotMinutes
	}
	if p.PaletteSize <= 0 {
		p.PaletteSize = DefaultPaletteSize
	}
	return p
}

// SpacingRule limits how a unit's sessions distribute across days.
type SpacingRule string

const (
	SpacingNone              SpacingRule = "none"
	SpacingOncePerDay        SpacingRule = "once_per_day"
	SpacingNoConsecutiveDays SpacingRule = "no_consecutive_days"
)

func normalizeSpacing(raw string) SpacingRule {
	switch SpacingRule(raw) {
	case SpacingOncePerDay:
		return SpacingOncePerDay
	case SpacingNoConsecutiveDays:
		return SpacingNoConsecutiveDays
	default:
		return SpacingNone
	}
}

// Window is a [Start,End) wall-clock range excluded from the slot grid.
type Window struct {
	Start string
	End   string
}

// Request is the raw scheduling payload before sanitization.
type Request struct {
	CycleLength       int
	WorkdayStart      string
	WorkdayEnd        string
	SlotTemplate      string
	MaxClientsPerSlot int
	Blackouts         []Window
	Clients           []ClientInput
	Resource          *ResourceInput
}

// ClientInput describes one entity as submitted.
type ClientInput struct {
	Name                 string
	SessionsNeeded       int
	SessionLengthMinutes int
	Tag                  string
	SpacingRule          string
	MaxPerDay            int
	GroupID              string
	Availability         map[string][]string
}

// ResourceInput declares a shared resource's daily ceiling and blackout.
type ResourceInput struct {
	MaxSessionsPerDay int
	Unavailable       map[string][]string
}

// Client is a sanitized entity ready for grouping and placement.
type Client struct {
	Name                 string
	SessionsNeeded       int
	SessionLengthMinutes int
	Tag                  string
	Spacing              SpacingRule
	MaxPerDay            int // 0 means unlimited
	GroupID              string
	Availability         map[string][]string
}

// Resource is the sanitized shared-resource constraint. MaxPerDay gates
// solo units only; Unavailable blacks out slots for every unit.
type Resource struct {
	MaxPerDay   int
	Unavailable map[string]map[string]bool
}

// Problem is the sanitized input to Solve. It is immutable once built.
type Problem struct {
	Days        []string
	Slots       []string
	Capacity    int
	SlotMinutes int
	PaletteSize int
	Clients     []Client
	Resource    *Resource
	DisplayIDs  map[string]int
}

// ClientSummary reports the per-entity outcome.
type ClientSummary struct {
	Needed        int
	Scheduled     int
	SessionLength int
	Reason        string
}

// Result is the assembled timetable for one invocation.
type Result struct {
	Days       []string
	Slots      []string
	Grid       map[string]map[string][]string
	Conflicts  []string
	Summary    map[string]ClientSummary
	DisplayIDs map[string]int
}
