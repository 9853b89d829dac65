package services

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/juustinnle/volunteer-hub/pkg/core/matcher"
	"github.com/juustinnle/volunteer-hub/pkg/core/model"
)

// MatchStore defines the store operations needed for matching
type MatchStore interface {
	GetUser(email string) (model.User, error)
	GetEvent(id string) (model.Event, error)
	ListEvents() []model.Event
	RecordMatch(email string, entry model.HistoryEntry, notification model.Notification) error
	VolunteerHistory(email string) ([]model.HistoryEntry, error)
}

// MatchingEvents returns the events the user qualifies for, in creation
// order, per the skill-intersection and date-overlap rules.
func MatchingEvents(database MatchStore, logger *zap.Logger, email string) ([]model.Event, error) {
	user, err := database.GetUser(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", email, err)
	}

	matched := matcher.MatchingEvents(user.Profile.Skills, user.Profile.Availability, database.ListEvents())

	logger.Debug("Computed matching events",
		zap.String("email", email),
		zap.Int("matched", len(matched)))
	return matched, nil
}

// MatchVolunteerInput is the input for committing a volunteer to an event
type MatchVolunteerInput struct {
	Email   string `json:"email" validate:"required,email"`
	EventID string `json:"eventId" validate:"required"`
}

// MatchVolunteer records a commitment between a user and an event: a
// history entry snapshotting the event plus a notification to the user,
// both applied atomically. Fails with store.ErrNotFound if either side does
// not resolve and store.ErrConflict if the user is already matched to the
// event.
func MatchVolunteer(
	database MatchStore,
	dispatcher EventDispatcher,
	logger *zap.Logger,
	input MatchVolunteerInput,
) error {
	if err := validate.Struct(input); err != nil {
		return asValidationError(err)
	}

	event, err := database.GetEvent(input.EventID)
	if err != nil {
		return fmt.Errorf("failed to get event %s: %w", input.EventID, err)
	}

	entry := model.NewHistoryEntry(event, model.StatusRegistered)
	notification := model.Notification{
		ID:      uuid.New().String(),
		Email:   input.Email,
		Message: matchMessage(event),
	}

	if err := database.RecordMatch(input.Email, entry, notification); err != nil {
		return fmt.Errorf("failed to record match for %s on event %s: %w", input.Email, input.EventID, err)
	}

	logger.Info("Volunteer matched",
		zap.String("email", input.Email),
		zap.String("event_id", event.ID),
		zap.String("event_name", event.Name))

	if err := dispatcher.Dispatch(VolunteerMatched{Email: input.Email, Event: event}); err != nil {
		return fmt.Errorf("failed to dispatch VolunteerMatched: %w", err)
	}

	return nil
}

// VolunteerHistory returns the user's history entries in append order
func VolunteerHistory(database MatchStore, email string) ([]model.HistoryEntry, error) {
	history, err := database.VolunteerHistory(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get history for %s: %w", email, err)
	}
	return history, nil
}
