package services

import (
	"fmt"

	"github.com/juustinnle/volunteer-hub/pkg/core/model"
)

// DomainEvent is an event raised by a service operation
type DomainEvent interface {
	Type() string
}

// EventDispatcher routes domain events to their registered handlers
type EventDispatcher interface {
	Dispatch(event DomainEvent) error
}

// EventCreated is raised after a new volunteer event is stored
type EventCreated struct {
	Event model.Event
}

func (e EventCreated) Type() string { return "EventCreated" }

// VolunteerMatched is raised after a volunteer commits to an event
type VolunteerMatched struct {
	Email string
	Event model.Event
}

func (e VolunteerMatched) Type() string { return "VolunteerMatched" }

// NotificationStored is raised after an explicit notification is stored
type NotificationStored struct {
	Notification model.Notification
}

func (e NotificationStored) Type() string { return "NotificationStored" }

// Handler processes a single domain event
type Handler func(event DomainEvent) error

// SyncDispatcher dispatches events to handlers synchronously, in the order
// the handlers were registered
type SyncDispatcher struct {
	handlers map[string][]Handler
}

// NewSyncDispatcher creates an empty dispatcher
func NewSyncDispatcher() *SyncDispatcher {
	return &SyncDispatcher{
		handlers: make(map[string][]Handler),
	}
}

// Register adds a handler for the given event type
func (d *SyncDispatcher) Register(eventType string, handler Handler) {
	d.handlers[eventType] = append(d.handlers[eventType], handler)
}

// Dispatch runs every handler registered for the event's type
func (d *SyncDispatcher) Dispatch(event DomainEvent) error {
	for _, handler := range d.handlers[event.Type()] {
		if err := handler(event); err != nil {
			return fmt.Errorf("handler for %s failed: %w", event.Type(), err)
		}
	}
	return nil
}
