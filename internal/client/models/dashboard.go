package models

// DashboardData is the admin dashboard summary.
type DashboardData struct {
	EventCount     int     `json:"eventCount"`
	ClubCount      int     `json:"clubCount"`
	AcceptanceRate float64 `json:"acceptanceRate"`
	DeclineRate    float64 `json:"declineRate"`
}
