// Package matcher implements the skill and availability matching between a
// volunteer's profile and the event collection.
//
// Matching is a pure single-pass filter: an event qualifies when the
// volunteer shares at least one required skill with it AND at least one of
// the event's date ranges overlaps one of the volunteer's availability
// ranges. Malformed date ranges fail closed: they never match and never
// produce an error.
package matcher

import (
	"github.com/juustinnle/volunteer-hub/pkg/core/model"
)

// MatchingEvents filters events down to those the volunteer qualifies for,
// preserving the relative order of the input collection.
//
// Empty userSkills or empty userAvailability yields an empty result: there
// are no vacuous matches.
func MatchingEvents(userSkills []string, userAvailability []string, events []model.Event) []model.Event {
	if len(userSkills) == 0 || len(userAvailability) == 0 {
		return []model.Event{}
	}

	skillSet := make(map[string]bool, len(userSkills))
	for _, skill := range userSkills {
		skillSet[skill] = true
	}

	availability := parseRanges(userAvailability)

	matched := make([]model.Event, 0)
	for _, event := range events {
		if !hasSkillOverlap(skillSet, event.RequiredSkills) {
			continue
		}
		if !hasDateOverlap(availability, parseRanges(event.EventDates)) {
			continue
		}
		matched = append(matched, event)
	}

	return matched
}

// hasSkillOverlap reports whether at least one required skill is in the
// volunteer's skill set. Unsatisfiable when requiredSkills is empty.
func hasSkillOverlap(skillSet map[string]bool, requiredSkills []string) bool {
	for _, skill := range requiredSkills {
		if skillSet[skill] {
			return true
		}
	}
	return false
}

// hasDateOverlap reports whether any availability range overlaps any event
// range. Unsatisfiable when either side is empty.
func hasDateOverlap(availability, eventRanges []model.DateRange) bool {
	for _, avail := range availability {
		for _, eventRange := range eventRanges {
			if avail.Overlaps(eventRange) {
				return true
			}
		}
	}
	return false
}

// parseRanges parses range strings, dropping malformed entries
func parseRanges(rangeStrings []string) []model.DateRange {
	ranges := make([]model.DateRange, 0, len(rangeStrings))
	for _, s := range rangeStrings {
		r, err := model.ParseDateRange(s)
		if err != nil {
			continue
		}
		ranges = append(ranges, r)
	}
	return ranges
}
