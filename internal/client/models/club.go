package models

// Club is a student club. Events is populated only by detail endpoints.
type Club struct {
	ID        string  `json:"id"`
	ClubName  string  `json:"clubName"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
	Events    []Event `json:"events,omitempty"`
}

// ClubRequest is the create/update payload for clubs.
type ClubRequest struct {
	ClubName string `json:"clubName"`
}
