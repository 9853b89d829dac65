package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juustinnle/volunteer-hub/pkg/core/model"
)

func TestSyncDispatcher_RunsHandlersInRegistrationOrder(t *testing.T) {
	dispatcher := NewSyncDispatcher()
	var order []string

	dispatcher.Register(EventCreated{}.Type(), func(event DomainEvent) error {
		order = append(order, "first")
		return nil
	})
	dispatcher.Register(EventCreated{}.Type(), func(event DomainEvent) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, dispatcher.Dispatch(EventCreated{Event: model.Event{ID: "e1"}}))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSyncDispatcher_NoHandlersIsANoOp(t *testing.T) {
	dispatcher := NewSyncDispatcher()

	assert.NoError(t, dispatcher.Dispatch(VolunteerMatched{Email: "a@example.com"}))
}

func TestSyncDispatcher_HandlerErrorPropagates(t *testing.T) {
	dispatcher := NewSyncDispatcher()
	dispatcher.Register(NotificationStored{}.Type(), func(event DomainEvent) error {
		return assert.AnError
	})

	err := dispatcher.Dispatch(NotificationStored{})
	assert.ErrorIs(t, err, assert.AnError)
}
