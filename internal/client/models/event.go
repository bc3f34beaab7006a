package models

import "time"

// EventStatus marks whether an event is still taking place.
type EventStatus string

const (
	EventStatusActive    EventStatus = "Active"
	EventStatusCancelled EventStatus = "Cancelled"
)

// Event is a campus event as returned by the backend. Clubs and Users are
// populated only by the details endpoint.
type Event struct {
	ID               string      `json:"id"`
	EventName        string      `json:"eventName"`
	EventDescription string      `json:"eventDescription"`
	StartTime        time.Time   `json:"startTime"`
	EndTime          time.Time   `json:"endTime"`
	ClubID           string      `json:"clubId,omitempty"`
	Clubs            []Club      `json:"Clubs,omitempty"`
	Status           EventStatus `json:"status"`
	CreatedAt        string      `json:"createdAt"`
	UpdatedAt        string      `json:"updatedAt"`
	DeclinedUsers    int         `json:"declinedUsers,omitempty"`
}

// EventRequest is the create/update payload for events.
type EventRequest struct {
	EventName        string      `json:"eventName"`
	EventDescription string      `json:"eventDescription"`
	StartTime        time.Time   `json:"startTime"`
	EndTime          time.Time   `json:"endTime"`
	ClubIDs          []string    `json:"clubIds"`
	Status           EventStatus `json:"status"`
}
