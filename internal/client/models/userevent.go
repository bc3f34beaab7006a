package models

// UserEventStatus is the user's RSVP decision for an event.
type UserEventStatus string

const (
	UserEventAccepted UserEventStatus = "Accepted"
	UserEventDeclined UserEventStatus = "Declined"
	UserEventIgnored  UserEventStatus = "Ignored"
)

// UserEvent links the current user to an event RSVP.
type UserEvent struct {
	ID      string          `json:"id"`
	EventID string          `json:"eventId"`
	UserID  string          `json:"userId"`
	Status  UserEventStatus `json:"status"`
}

// UserEventRequest records an RSVP decision.
type UserEventRequest struct {
	EventID string          `json:"eventId,omitempty"`
	Status  UserEventStatus `json:"status"`
}
