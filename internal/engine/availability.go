package engine

import "strings"

// canonicalDay maps heterogeneous day keys onto canonical identifiers:
// bare indices ("3", 3-as-string after decoding) become "Day3", while
// already-canonical keys pass through.
func canonicalDay(key string) string {
	key = strings.TrimSpace(key)
	if strings.HasPrefix(key, "Day") {
		return key
	}
	return "Day" + key
}

// availabilityByDay projects an entity's raw availability onto
// canonical day identifiers, merging duplicate day keys and
// deduplicating slot labels.
func availabilityByDay(raw map[string][]string) map[string]map[string]bool {
	out := make(map[string]map[string]bool, len(raw))
	for key, labels := range raw {
		day := canonicalDay(key)
		if out[day] == nil {
			out[day] = make(map[string]bool, len(labels))
		}
		for _, label := range labels {
			out[day][label] = true
		}
	}
	return out
}

// intersectAvailability computes the per-day intersection across all
// group members. Days whose intersection is empty are absent from the
// result entirely, not present with an empty set.
func intersectAvailability(days []string, members []Client) map[string]map[string]bool {
	if len(members) == 0 {
		return map[string]map[string]bool{}
	}
	perMember := make([]map[string]map[string]bool, 0, len(members))
	for _, m := range members {
		perMember = append(perMember, availabilityByDay(m.Availability))
	}

	combined := make(map[string]map[string]bool)
	for _, day := range days {
		base := perMember[0][day]
		if len(base) == 0 {
			continue
		}
		shared := make(map[string]bool, len(base))
		for label := range base {
			shared[label] = true
		}
		for _, other := range perMember[1:] {
			avail := other[day]
			for label := range shared {
				if !avail[label] {
					delete(shared, label)
				}
			}
		}
		if len(shared) > 0 {
			combined[day] = shared
		}
	}
	return combined
}
