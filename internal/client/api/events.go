package api

import (
	"context"
	"net/http"

	"github.com/nbassil/campuslink/internal/client/models"
)

// EventsClient accesses campus events.
type EventsClient struct {
	CRUD[models.Event, models.EventRequest]
}

func NewEventsClient(c *Client) *EventsClient {
	return &EventsClient{CRUD: newCRUD[models.Event, models.EventRequest](c, "/events")}
}

// FindOneWithDetails fetches an event with its clubs and RSVP counts
// populated.
func (e *EventsClient) FindOneWithDetails(ctx context.Context, id string) (*models.Event, error) {
	var out models.Event
	if err := e.c.do(ctx, http.MethodGet, e.path+"/"+id+"/details", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
