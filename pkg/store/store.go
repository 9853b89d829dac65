// Package store holds the in-memory record collections: users, events and
// notifications. State is transient process state; nothing survives a
// restart.
package store

import (
	"errors"
	"sync"

	"github.com/juustinnle/volunteer-hub/pkg/core/model"
)

var (
	// ErrNotFound is returned when a referenced record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned on uniqueness or duplicate-state violations
	ErrConflict = errors.New("record conflict")
)

// Store owns the three record collections. A single mutex guards all of
// them so every operation is atomic with respect to concurrent requests.
// Events and notifications keep insertion order.
type Store struct {
	mu            sync.RWMutex
	users         map[string]*model.User
	events        []model.Event
	notifications []model.Notification
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users: make(map[string]*model.User),
	}
}

// InsertUser adds a new user. Returns ErrConflict if the email is taken.
func (s *Store) InsertUser(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return ErrConflict
	}

	u := cloneUser(user)
	s.users[user.Email] = &u
	return nil
}

// GetUser returns a copy of the user with the given email
func (s *Store) GetUser(email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[email]
	if !exists {
		return model.User{}, ErrNotFound
	}
	return cloneUser(*user), nil
}

// ListUsers returns copies of all users in no particular order
func (s *Store) ListUsers() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]model.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, cloneUser(*user))
	}
	return users
}

// UpdateProfile replaces the user's profile wholesale
func (s *Store) UpdateProfile(email string, profile model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[email]
	if !exists {
		return ErrNotFound
	}

	user.Profile = cloneProfile(profile)
	return nil
}

// VolunteerHistory returns a copy of the user's history in append order
func (s *Store) VolunteerHistory(email string) ([]model.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[email]
	if !exists {
		return nil, ErrNotFound
	}

	history := make([]model.HistoryEntry, len(user.VolunteerHistory))
	copy(history, user.VolunteerHistory)
	return history, nil
}

// InsertEvent appends an event. Returns ErrConflict if the id is taken.
func (s *Store) InsertEvent(event model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.events {
		if existing.ID == event.ID {
			return ErrConflict
		}
	}

	s.events = append(s.events, cloneEvent(event))
	return nil
}

// GetEvent returns a copy of the event with the given id
func (s *Store) GetEvent(id string) (model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, event := range s.events {
		if event.ID == id {
			return cloneEvent(event), nil
		}
	}
	return model.Event{}, ErrNotFound
}

// ListEvents returns copies of all events in insertion order
func (s *Store) ListEvents() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]model.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, cloneEvent(event))
	}
	return events
}

// DeleteEvent removes the event with the given id. History entries that
// snapshot the event are left untouched.
func (s *Store) DeleteEvent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, event := range s.events {
		if event.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// InsertNotification appends a single notification
func (s *Store) InsertNotification(notification model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(s.notifications, notification)
	return nil
}

// InsertNotifications appends a batch of notifications in order
func (s *Store) InsertNotifications(notifications []model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(s.notifications, notifications...)
	return nil
}

// ListNotifications returns copies of the recipient's notifications in
// insertion order
func (s *Store) ListNotifications(email string) []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matching := make([]model.Notification, 0)
	for _, notification := range s.notifications {
		if notification.Email == email {
			matching = append(matching, notification)
		}
	}
	return matching
}

// DeleteNotification removes the earliest-inserted notification with the
// exact (email, message) pair. Later duplicates are left untouched.
func (s *Store) DeleteNotification(email, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, notification := range s.notifications {
		if notification.Email == email && notification.Message == message {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// RecordMatch appends a history entry to the user and the matching
// notification under a single lock acquisition: both apply or neither does.
// Returns ErrNotFound if the user does not exist and ErrConflict if the
// user already has a history entry for the entry's event.
func (s *Store) RecordMatch(email string, entry model.HistoryEntry, notification model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[email]
	if !exists {
		return ErrNotFound
	}

	for _, existing := range user.VolunteerHistory {
		if existing.EventID == entry.EventID {
			return ErrConflict
		}
	}

	user.VolunteerHistory = append(user.VolunteerHistory, entry)
	s.notifications = append(s.notifications, notification)
	return nil
}

func cloneUser(user model.User) model.User {
	user.Profile = cloneProfile(user.Profile)
	user.VolunteerHistory = append([]model.HistoryEntry(nil), user.VolunteerHistory...)
	return user
}

func cloneProfile(profile model.Profile) model.Profile {
	profile.Skills = append([]string(nil), profile.Skills...)
	profile.Availability = append([]string(nil), profile.Availability...)
	return profile
}

func cloneEvent(event model.Event) model.Event {
	event.RequiredSkills = append([]string(nil), event.RequiredSkills...)
	event.EventDates = append([]string(nil), event.EventDates...)
	return event
}
