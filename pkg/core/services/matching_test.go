package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/juustinnle/volunteer-hub/pkg/core/model"
	"github.com/juustinnle/volunteer-hub/pkg/store"
)

// registerWithProfile registers a user and fills in a matchable profile
func registerWithProfile(t *testing.T, s *store.Store, email string, skills, availability []string) {
	t.Helper()
	logger := zap.NewNop()

	require.NoError(t, Register(s, logger, RegisterInput{Email: email, Password: "secret1"}))
	require.NoError(t, UpdateProfile(s, logger, email, ProfileInput{
		FullName:     "Test Volunteer",
		Address1:     "1 Main St",
		City:         "Houston",
		State:        "TX",
		Zip:          "77001",
		Skills:       skills,
		Availability: availability,
	}))
}

func TestMatchingEvents_ReturnsQualifyingEvents(t *testing.T) {
	s := store.NewStore()
	logger := zap.NewNop()
	dispatcher := dispatcherWithBroadcast(s, logger)

	registerWithProfile(t, s, "a@example.com", []string{"skill1"}, []string{"2024-07-20 to 2024-07-21"})

	matching := newEventFixture()
	_, err := CreateEvent(s, dispatcher, logger, matching)
	require.NoError(t, err)

	other := newEventFixture()
	other.Name = "Unrelated Event"
	other.RequiredSkills = []string{"skillX"}
	_, err = CreateEvent(s, dispatcher, logger, other)
	require.NoError(t, err)

	matched, err := MatchingEvents(s, logger, "a@example.com")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Community Food Drive", matched[0].Name)
}

func TestMatchingEvents_UserNotFound(t *testing.T) {
	s := store.NewStore()

	_, err := MatchingEvents(s, zap.NewNop(), "missing@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMatchVolunteer_AppendsHistoryAndNotification(t *testing.T) {
	s := store.NewStore()
	logger := zap.NewNop()
	dispatcher := dispatcherWithBroadcast(s, logger)

	registerWithProfile(t, s, "a@example.com", []string{"skill1"}, []string{"2024-07-20 to 2024-07-21"})
	event, err := CreateEvent(s, dispatcher, logger, newEventFixture())
	require.NoError(t, err)
	notificationsBefore := len(s.ListNotifications("a@example.com"))

	err = MatchVolunteer(s, dispatcher, logger, MatchVolunteerInput{Email: "a@example.com", EventID: event.ID})
	require.NoError(t, err)

	history, err := VolunteerHistory(s, "a@example.com")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, event.ID, history[0].EventID)
	assert.Equal(t, model.StatusRegistered, history[0].Status)

	notifications := s.ListNotifications("a@example.com")
	require.Len(t, notifications, notificationsBefore+1)
	assert.Contains(t, notifications[len(notifications)-1].Message, event.Name)
}

func TestMatchVolunteer_SecondCallConflicts(t *testing.T) {
	s := store.NewStore()
	logger := zap.NewNop()
	dispatcher := dispatcherWithBroadcast(s, logger)

	registerWithProfile(t, s, "a@example.com", []string{"skill1"}, []string{"2024-07-20 to 2024-07-21"})
	event, err := CreateEvent(s, dispatcher, logger, newEventFixture())
	require.NoError(t, err)

	input := MatchVolunteerInput{Email: "a@example.com", EventID: event.ID}
	require.NoError(t, MatchVolunteer(s, dispatcher, logger, input))

	err = MatchVolunteer(s, dispatcher, logger, input)
	assert.ErrorIs(t, err, store.ErrConflict)

	history, err := VolunteerHistory(s, "a@example.com")
	require.NoError(t, err)
	assert.Len(t, history, 1, "history entry must not be duplicated")
}

func TestMatchVolunteer_NotFound(t *testing.T) {
	s := store.NewStore()
	logger := zap.NewNop()
	dispatcher := dispatcherWithBroadcast(s, logger)

	registerWithProfile(t, s, "a@example.com", []string{"skill1"}, []string{"2024-07-20 to 2024-07-21"})
	event, err := CreateEvent(s, dispatcher, logger, newEventFixture())
	require.NoError(t, err)

	err = MatchVolunteer(s, dispatcher, logger, MatchVolunteerInput{Email: "a@example.com", EventID: "missing"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = MatchVolunteer(s, dispatcher, logger, MatchVolunteerInput{Email: "missing@example.com", EventID: event.ID})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMatchVolunteer_Validation(t *testing.T) {
	s := store.NewStore()
	dispatcher := NewSyncDispatcher()

	err := MatchVolunteer(s, dispatcher, zap.NewNop(), MatchVolunteerInput{Email: "not-an-email", EventID: "e1"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestVolunteerHistory_SurvivesEventDeletion(t *testing.T) {
	s := store.NewStore()
	logger := zap.NewNop()
	dispatcher := dispatcherWithBroadcast(s, logger)

	registerWithProfile(t, s, "a@example.com", []string{"skill1"}, []string{"2024-07-20 to 2024-07-21"})
	event, err := CreateEvent(s, dispatcher, logger, newEventFixture())
	require.NoError(t, err)
	require.NoError(t, MatchVolunteer(s, dispatcher, logger, MatchVolunteerInput{Email: "a@example.com", EventID: event.ID}))

	require.NoError(t, DeleteEvent(s, logger, event.ID))

	history, err := VolunteerHistory(s, "a@example.com")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, event.Name, history[0].Name)
}

func TestVolunteerHistory_UserNotFound(t *testing.T) {
	s := store.NewStore()

	_, err := VolunteerHistory(s, "missing@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
