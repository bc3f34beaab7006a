package api

import (
	"context"

	"github.com/nbassil/campuslink/internal/client/models"
)

// UserEventsClient records the current user's RSVP decisions.
type UserEventsClient struct {
	CRUD[models.UserEvent, models.UserEventRequest]
}

func NewUserEventsClient(c *Client) *UserEventsClient {
	return &UserEventsClient{CRUD: newCRUD[models.UserEvent, models.UserEventRequest](c, "/userEvents")}
}

// RSVP records the user's decision for an event.
func (u *UserEventsClient) RSVP(ctx context.Context, eventID string, status models.UserEventStatus) (*models.UserEvent, error) {
	return u.Create(ctx, models.UserEventRequest{EventID: eventID, Status: status})
}
