package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/juustinnle/volunteer-hub/pkg/store"
)

func TestCreateNotification(t *testing.T) {
	s := store.NewStore()
	logger := zap.NewNop()
	dispatcher := NewSyncDispatcher()

	notification, err := CreateNotification(s, dispatcher, logger, CreateNotificationInput{
		Email:   "a@example.com",
		Message: "hello",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, notification.ID)

	listed := ListNotifications(s, "a@example.com")
	require.Len(t, listed, 1)
	assert.Equal(t, "hello", listed[0].Message)
}

func TestCreateNotification_RecipientNeedNotBeRegistered(t *testing.T) {
	s := store.NewStore()

	_, err := CreateNotification(s, NewSyncDispatcher(), zap.NewNop(), CreateNotificationInput{
		Email:   "stranger@example.com",
		Message: "welcome",
	})
	assert.NoError(t, err)
}

func TestCreateNotification_Validation(t *testing.T) {
	s := store.NewStore()
	dispatcher := NewSyncDispatcher()
	logger := zap.NewNop()

	_, err := CreateNotification(s, dispatcher, logger, CreateNotificationInput{Email: "bad", Message: "hi"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = CreateNotification(s, dispatcher, logger, CreateNotificationInput{Email: "a@example.com"})
	require.ErrorAs(t, err, &verr)
}

func TestDeleteNotification_FirstMatchOnly(t *testing.T) {
	s := store.NewStore()
	logger := zap.NewNop()
	dispatcher := NewSyncDispatcher()

	for i := 0; i < 2; i++ {
		_, err := CreateNotification(s, dispatcher, logger, CreateNotificationInput{
			Email:   "a@example.com",
			Message: "duplicate",
		})
		require.NoError(t, err)
	}

	require.NoError(t, DeleteNotification(s, logger, "a@example.com", "duplicate"))
	assert.Len(t, ListNotifications(s, "a@example.com"), 1)

	require.NoError(t, DeleteNotification(s, logger, "a@example.com", "duplicate"))
	assert.Empty(t, ListNotifications(s, "a@example.com"))

	assert.ErrorIs(t, DeleteNotification(s, logger, "a@example.com", "duplicate"), store.ErrNotFound)
}

// recordingSender captures emails instead of delivering them
type recordingSender struct {
	sent []string
	err  error
}

func (r *recordingSender) SendEmail(to, subject, body string) error {
	r.sent = append(r.sent, to+": "+body)
	return r.err
}

func TestMailHandlers_DeliverNotifications(t *testing.T) {
	s := store.NewStore()
	logger := zap.NewNop()
	sender := &recordingSender{}

	dispatcher := NewSyncDispatcher()
	RegisterBroadcastHandler(dispatcher, s, s, logger)
	RegisterMailHandlers(dispatcher, sender, s, logger)

	require.NoError(t, Register(s, logger, RegisterInput{Email: "u1@example.com", Password: "secret1"}))

	event, err := CreateEvent(s, dispatcher, logger, newEventFixture())
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0], "u1@example.com")
	assert.Contains(t, sender.sent[0], event.Name)

	_, err = CreateNotification(s, dispatcher, logger, CreateNotificationInput{
		Email:   "u1@example.com",
		Message: "explicit message",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 2)
	assert.Contains(t, sender.sent[1], "explicit message")
}

func TestMailHandlers_DeliveryFailureDoesNotFailOperation(t *testing.T) {
	s := store.NewStore()
	logger := zap.NewNop()
	sender := &recordingSender{err: assert.AnError}

	dispatcher := NewSyncDispatcher()
	RegisterMailHandlers(dispatcher, sender, s, logger)

	_, err := CreateNotification(s, dispatcher, logger, CreateNotificationInput{
		Email:   "a@example.com",
		Message: "hello",
	})
	require.NoError(t, err)
	assert.Len(t, ListNotifications(s, "a@example.com"), 1)
}
