package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juustinnle/volunteer-hub/pkg/core/model"
)

func makeEvent(id string, skills []string, dates []string) model.Event {
	return model.Event{
		ID:             id,
		Name:           "Event " + id,
		Description:    "test event",
		Location:       "Houston, TX",
		RequiredSkills: skills,
		Urgency:        "Medium",
		EventDates:     dates,
	}
}

func TestMatchingEvents_SkillAndDateMatch(t *testing.T) {
	events := []model.Event{
		makeEvent("e1", []string{"skill1"}, []string{"2024-07-20 to 2024-07-21"}),
	}

	matched := MatchingEvents([]string{"skill1"}, []string{"2024-07-20 to 2024-07-21"}, events)

	require.Len(t, matched, 1)
	assert.Equal(t, "e1", matched[0].ID)
}

func TestMatchingEvents_NoCommonSkill(t *testing.T) {
	events := []model.Event{
		makeEvent("e1", []string{"skillX"}, []string{"2024-07-20 to 2024-07-21"}),
	}

	matched := MatchingEvents([]string{"skill1"}, []string{"2024-07-20 to 2024-07-21"}, events)

	assert.Empty(t, matched)
}

func TestMatchingEvents_NoDateOverlap(t *testing.T) {
	events := []model.Event{
		makeEvent("e1", []string{"skill1"}, []string{"2024-08-01 to 2024-08-02"}),
	}

	matched := MatchingEvents([]string{"skill1"}, []string{"2024-07-20 to 2024-07-21"}, events)

	assert.Empty(t, matched)
}

func TestMatchingEvents_TouchingEndpointCounts(t *testing.T) {
	events := []model.Event{
		makeEvent("e1", []string{"skill1"}, []string{"2024-01-05 to 2024-01-10"}),
	}

	matched := MatchingEvents([]string{"skill1"}, []string{"2024-01-01 to 2024-01-05"}, events)

	require.Len(t, matched, 1)
}

func TestMatchingEvents_EmptySkillsOrAvailability(t *testing.T) {
	events := []model.Event{
		makeEvent("e1", []string{"skill1"}, []string{"2024-07-20 to 2024-07-21"}),
	}

	assert.Empty(t, MatchingEvents(nil, []string{"2024-07-20 to 2024-07-21"}, events))
	assert.Empty(t, MatchingEvents([]string{"skill1"}, nil, events))
}

func TestMatchingEvents_MalformedDatesFailClosed(t *testing.T) {
	events := []model.Event{
		makeEvent("e1", []string{"skill1"}, []string{"garbage"}),
		makeEvent("e2", []string{"skill1"}, []string{"2024-07-20 to 2024-07-21"}),
	}

	matched := MatchingEvents([]string{"skill1"}, []string{"2024-07-20 to 2024-07-21"}, events)

	require.Len(t, matched, 1)
	assert.Equal(t, "e2", matched[0].ID)

	// Malformed availability never matches either
	assert.Empty(t, MatchingEvents([]string{"skill1"}, []string{"not a range"}, events))
}

func TestMatchingEvents_PreservesEventOrder(t *testing.T) {
	events := []model.Event{
		makeEvent("e1", []string{"skill1"}, []string{"2024-07-01 to 2024-07-30"}),
		makeEvent("e2", []string{"skillX"}, []string{"2024-07-01 to 2024-07-30"}),
		makeEvent("e3", []string{"skill2", "skill1"}, []string{"2024-07-01 to 2024-07-30"}),
		makeEvent("e4", []string{"skill1"}, []string{"2024-09-01 to 2024-09-02"}),
		makeEvent("e5", []string{"skill2"}, []string{"2024-07-01 to 2024-07-30"}),
	}

	matched := MatchingEvents(
		[]string{"skill1", "skill2"},
		[]string{"2024-07-10 to 2024-07-12"},
		events,
	)

	require.Len(t, matched, 3)
	assert.Equal(t, "e1", matched[0].ID)
	assert.Equal(t, "e3", matched[1].ID)
	assert.Equal(t, "e5", matched[2].ID)
}

func TestMatchingEvents_EventWithNoSkillsOrDatesNeverMatches(t *testing.T) {
	events := []model.Event{
		makeEvent("e1", nil, []string{"2024-07-20 to 2024-07-21"}),
		makeEvent("e2", []string{"skill1"}, nil),
	}

	matched := MatchingEvents([]string{"skill1"}, []string{"2024-07-20 to 2024-07-21"}, events)

	assert.Empty(t, matched)
}
