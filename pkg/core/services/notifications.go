package services

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/juustinnle/volunteer-hub/pkg/core/model"
)

// CreateNotificationInput is the input for creating an explicit notification
type CreateNotificationInput struct {
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// NotificationStore defines the store operations needed for notifications
type NotificationStore interface {
	InsertNotification(notification model.Notification) error
	InsertNotifications(notifications []model.Notification) error
	ListNotifications(email string) []model.Notification
	DeleteNotification(email, message string) error
}

// UserLister lists all registered users, used for broadcast fan-out
type UserLister interface {
	ListUsers() []model.User
}

// CreateNotification validates and stores an explicit notification. The
// recipient does not have to be a registered user.
func CreateNotification(
	database NotificationStore,
	dispatcher EventDispatcher,
	logger *zap.Logger,
	input CreateNotificationInput,
) (*model.Notification, error) {
	if err := validate.Struct(input); err != nil {
		return nil, asValidationError(err)
	}

	notification := model.Notification{
		ID:      uuid.New().String(),
		Email:   input.Email,
		Message: input.Message,
	}

	if err := database.InsertNotification(notification); err != nil {
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}

	logger.Info("Notification created",
		zap.String("id", notification.ID),
		zap.String("email", notification.Email))

	if err := dispatcher.Dispatch(NotificationStored{Notification: notification}); err != nil {
		return nil, fmt.Errorf("failed to dispatch NotificationStored: %w", err)
	}

	return &notification, nil
}

// ListNotifications returns the recipient's notifications in insertion
// order. An unknown recipient simply has none.
func ListNotifications(database NotificationStore, email string) []model.Notification {
	return database.ListNotifications(email)
}

// DeleteNotification removes the earliest-inserted notification matching
// the exact (email, message) pair
func DeleteNotification(database NotificationStore, logger *zap.Logger, email, message string) error {
	if err := database.DeleteNotification(email, message); err != nil {
		return fmt.Errorf("failed to delete notification for %s: %w", email, err)
	}

	logger.Info("Notification deleted", zap.String("email", email))
	return nil
}

// RegisterBroadcastHandler wires the EventCreated fan-out: one notification
// per registered user announcing the new event.
func RegisterBroadcastHandler(
	dispatcher *SyncDispatcher,
	database NotificationStore,
	users UserLister,
	logger *zap.Logger,
) {
	dispatcher.Register(EventCreated{}.Type(), func(event DomainEvent) error {
		created, ok := event.(EventCreated)
		if !ok {
			return fmt.Errorf("unexpected event payload for %s", event.Type())
		}

		recipients := users.ListUsers()
		notifications := make([]model.Notification, len(recipients))
		for i, user := range recipients {
			notifications[i] = model.Notification{
				ID:      uuid.New().String(),
				Email:   user.Email,
				Message: broadcastMessage(created.Event),
			}
		}

		if err := database.InsertNotifications(notifications); err != nil {
			return fmt.Errorf("failed to insert broadcast notifications: %w", err)
		}

		logger.Info("Broadcast notifications sent",
			zap.String("event_id", created.Event.ID),
			zap.Int("recipients", len(notifications)))
		return nil
	})
}

// broadcastMessage builds the announcement sent to every user when an event
// is created
func broadcastMessage(event model.Event) string {
	return fmt.Sprintf("A new event has been created: %s", event.Name)
}

// matchMessage builds the notification sent to a volunteer on a successful
// match
func matchMessage(event model.Event) string {
	return fmt.Sprintf("You have been matched to volunteer for event: %s", event.Name)
}
