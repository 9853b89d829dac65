package services

import (
	"go.uber.org/zap"
)

// EmailSender delivers a single email
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

const mailSubject = "Volunteer Hub"

// RegisterMailHandlers wires optional email delivery of notifications onto
// the dispatcher. Delivery failures are logged and never fail the
// originating operation; the stored notification is the source of truth.
func RegisterMailHandlers(dispatcher *SyncDispatcher, sender EmailSender, users UserLister, logger *zap.Logger) {
	send := func(to, body string) {
		if err := sender.SendEmail(to, mailSubject, body); err != nil {
			logger.Warn("Failed to deliver notification email",
				zap.String("to", to),
				zap.Error(err))
		}
	}

	dispatcher.Register(EventCreated{}.Type(), func(event DomainEvent) error {
		created, ok := event.(EventCreated)
		if !ok {
			return nil
		}
		for _, user := range users.ListUsers() {
			send(user.Email, broadcastMessage(created.Event))
		}
		return nil
	})

	dispatcher.Register(VolunteerMatched{}.Type(), func(event DomainEvent) error {
		matched, ok := event.(VolunteerMatched)
		if !ok {
			return nil
		}
		send(matched.Email, matchMessage(matched.Event))
		return nil
	})

	dispatcher.Register(NotificationStored{}.Type(), func(event DomainEvent) error {
		stored, ok := event.(NotificationStored)
		if !ok {
			return nil
		}
		send(stored.Notification.Email, stored.Notification.Message)
		return nil
	})
}
