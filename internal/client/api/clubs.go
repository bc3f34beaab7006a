package api

import (
	"github.com/nbassil/campuslink/internal/client/models"
)

// ClubsClient accesses student clubs.
type ClubsClient struct {
	CRUD[models.Club, models.ClubRequest]
}

func NewClubsClient(c *Client) *ClubsClient {
	return &ClubsClient{CRUD: newCRUD[models.Club, models.ClubRequest](c, "/clubs")}
}
