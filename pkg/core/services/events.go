package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/juustinnle/volunteer-hub/pkg/core/model"
)

// CreateEventInput is the input for creating a new event
type CreateEventInput struct {
	Name           string   `json:"name" validate:"required,max=100"`
	Description    string   `json:"description" validate:"required"`
	Location       string   `json:"location" validate:"required"`
	RequiredSkills []string `json:"requiredSkills" validate:"required,min=1,dive,required"`
	Urgency        string   `json:"urgency" validate:"required"`
	EventDates     []string `json:"eventDates" validate:"omitempty"`

	// Optional RFC 5545 recurrence rule expanded into additional date
	// ranges, each spanning RecurrenceDays days from its occurrence.
	Recurrence     string `json:"recurrence" validate:"omitempty"`
	RecurrenceDays int    `json:"recurrenceDays" validate:"omitempty,min=1"`
}

// EventStore defines the store operations needed for the event lifecycle
type EventStore interface {
	InsertEvent(event model.Event) error
	ListEvents() []model.Event
	DeleteEvent(id string) error
}

// CreateEvent validates the input, assigns a fresh id, stores the event and
// raises EventCreated so the broadcast handler can notify every registered
// user.
func CreateEvent(
	database EventStore,
	dispatcher EventDispatcher,
	logger *zap.Logger,
	input CreateEventInput,
) (*model.Event, error) {
	if err := validate.Struct(input); err != nil {
		return nil, asValidationError(err)
	}

	eventDates := append([]string(nil), input.EventDates...)
	for _, rangeStr := range eventDates {
		if _, err := model.ParseDateRange(rangeStr); err != nil {
			return nil, newValidationError("eventDates", fmt.Sprintf("invalid date range %q", rangeStr))
		}
	}

	if input.Recurrence != "" {
		expanded, err := expandRecurrence(input.Recurrence, input.RecurrenceDays)
		if err != nil {
			return nil, err
		}
		logger.Debug("Expanded recurrence rule",
			zap.String("rrule", input.Recurrence),
			zap.Int("occurrences", len(expanded)))
		eventDates = append(eventDates, expanded...)
	}

	if len(eventDates) == 0 {
		return nil, newValidationError("eventDates", "at least one date range is required")
	}

	event := model.Event{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Description:    input.Description,
		Location:       input.Location,
		RequiredSkills: input.RequiredSkills,
		Urgency:        input.Urgency,
		EventDates:     eventDates,
	}

	if err := database.InsertEvent(event); err != nil {
		return nil, fmt.Errorf("failed to insert event %s: %w", event.ID, err)
	}

	logger.Info("Event created",
		zap.String("id", event.ID),
		zap.String("name", event.Name),
		zap.Int("date_ranges", len(event.EventDates)))

	if err := dispatcher.Dispatch(EventCreated{Event: event}); err != nil {
		return nil, fmt.Errorf("failed to dispatch EventCreated for %s: %w", event.ID, err)
	}

	return &event, nil
}

// ListEvents returns all events in creation order
func ListEvents(database EventStore) []model.Event {
	return database.ListEvents()
}

// DeleteEvent removes the event by id. Volunteer history snapshots
// referencing the event are unaffected.
func DeleteEvent(database EventStore, logger *zap.Logger, id string) error {
	if id == "" {
		return newValidationError("id", "event id is required")
	}

	if err := database.DeleteEvent(id); err != nil {
		return fmt.Errorf("failed to delete event %s: %w", id, err)
	}

	logger.Info("Event deleted", zap.String("id", id))
	return nil
}

// expandRecurrence expands a bounded RFC 5545 recurrence rule into date
// range strings, each covering durationDays days starting at an occurrence.
// A durationDays of 0 defaults to single-day ranges.
func expandRecurrence(rule string, durationDays int) ([]string, error) {
	parsed, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, newValidationError("recurrence", fmt.Sprintf("invalid recurrence rule: %v", err))
	}

	// Unbounded rules would expand forever
	if parsed.OrigOptions.Count == 0 && parsed.OrigOptions.Until.IsZero() {
		return nil, newValidationError("recurrence", "recurrence rule must carry COUNT or UNTIL")
	}

	if durationDays < 1 {
		durationDays = 1
	}

	occurrences := parsed.All()
	ranges := make([]string, len(occurrences))
	for i, start := range occurrences {
		end := start.AddDate(0, 0, durationDays-1)
		ranges[i] = model.FormatDateRange(start, end)
	}

	return ranges, nil
}
