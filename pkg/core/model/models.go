package model

// MatchStatus is the status recorded on a volunteer history entry
type MatchStatus string

const (
	StatusRegistered MatchStatus = "Registered"
)

// Profile holds a user's volunteer profile. Replaced wholesale on update.
type Profile struct {
	FullName     string   `json:"fullName"`
	Address1     string   `json:"address1"`
	Address2     string   `json:"address2,omitempty"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Zip          string   `json:"zip"`
	Skills       []string `json:"skills,omitempty"`
	Availability []string `json:"availability,omitempty"` // "YYYY-MM-DD to YYYY-MM-DD" range strings
}

// User represents a registered volunteer account
type User struct {
	Email            string         `json:"email"`
	Password         string         `json:"-"` // stored as given, compared verbatim
	Profile          Profile        `json:"profile"`
	VolunteerHistory []HistoryEntry `json:"volunteerHistory"`
}

// Event represents a volunteer event
type Event struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	RequiredSkills []string `json:"requiredSkills"`
	Urgency        string   `json:"urgency"`
	EventDates     []string `json:"eventDates"` // "YYYY-MM-DD to YYYY-MM-DD" range strings
}

// Notification is a message addressed to an email address. The recipient does
// not have to be a registered user.
type Notification struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// HistoryEntry is a snapshot of an event taken at match time. Deleting the
// event later does not touch entries that reference it.
type HistoryEntry struct {
	EventID        string      `json:"eventId"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Location       string      `json:"location"`
	RequiredSkills []string    `json:"requiredSkills"`
	Urgency        string      `json:"urgency"`
	EventDates     []string    `json:"eventDates"`
	Status         MatchStatus `json:"status"`
}

// NewHistoryEntry snapshots an event into a history entry with the given status
func NewHistoryEntry(event Event, status MatchStatus) HistoryEntry {
	return HistoryEntry{
		EventID:        event.ID,
		Name:           event.Name,
		Description:    event.Description,
		Location:       event.Location,
		RequiredSkills: append([]string(nil), event.RequiredSkills...),
		Urgency:        event.Urgency,
		EventDates:     append([]string(nil), event.EventDates...),
		Status:         status,
	}
}
