package engine

// Unit is an atomic scheduling unit: a solo entity, or a group of
// entities sharing a group id that must be booked together.
type Unit struct {
	Key           string // group id, or the client name for solos
	Members       []Client
	Solo          bool
	Needed        int
	SessionLength int
	Spacing       SpacingRule
	MaxPerDay     int // solo units only
	Usable        map[string]map[string]bool
}

// Size is the occupancy a unit adds to each slot it books.
func (u *Unit) Size() int {
	return len(u.Members)
}

// buildUnits partitions clients into scheduling units. Group units come
// first, in group-id first-seen order, followed by solo units in input
// order. The order is observable downstream: it decides who wins scarce
// capacity, so it must stay stable.
func buildUnits(p *Problem) []Unit {
	groups := make(map[string][]Client)
	var groupOrder []string
	var solos []Client

	for _, c := range p.Clients {
		if c.GroupID != "" {
			if _, seen := groups[c.GroupID]; !seen {
				groupOrder = append(groupOrder, c.GroupID)
			}
			groups[c.GroupID] = append(groups[c.GroupID], c)
			continue
		}
		solos = append(solos, c)
	}

	units := make([]Unit, 0, len(groupOrder)+len(solos))
	for _, id := range groupOrder {
		members := groups[id]
		// Members are assumed to share identical requirements; the
		// first member is the representative.
		rep := members[0]
		units = append(units, Unit{
			Key:           id,
			Members:       members,
			Needed:        rep.SessionsNeeded,
			SessionLength: rep.SessionLengthMinutes,
			Spacing:       rep.Spacing,
			Usable:        intersectAvailability(p.Days, members),
		})
	}
	for _, c := range solos {
		units = append(units, Unit{
			Key:           c.Name,
			Members:       []Client{c},
			Solo:          true,
			Needed:        c.SessionsNeeded,
			SessionLength: c.SessionLengthMinutes,
			Spacing:       c.Spacing,
			MaxPerDay:     c.MaxPerDay,
			Usable:        availabilityByDay(c.Availability),
		})
	}
	return units
}
