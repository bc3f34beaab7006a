package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbassil/campuslink/internal/client/gateway"
	"github.com/nbassil/campuslink/internal/client/models"
)

func staticToken(tok string) TokenSource {
	return TokenFunc(func() string { return tok })
}

func newTestClient(t *testing.T, handler http.Handler, tok string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, staticToken(tok))
}

func TestEvents_FindSendsBearer(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/events", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.Event{
			{ID: "1", EventName: "Hackathon", Status: models.EventStatusActive},
		})
	})

	events := NewEventsClient(newTestClient(t, handler, "tok-1"))
	got, err := events.Find(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Hackathon", got[0].EventName)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestEvents_FindOneWithDetails(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/events/42/details", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.Event{
			ID:    "42",
			Clubs: []models.Club{{ID: "3", ClubName: "Robotics"}},
		})
	})

	events := NewEventsClient(newTestClient(t, handler, "tok"))
	got, err := events.FindOneWithDetails(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, got.Clubs, 1)
	assert.Equal(t, "Robotics", got.Clubs[0].ClubName)
}

func TestClubs_CreateAndDelete(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/clubs":
			var req models.ClubRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			_ = json.NewEncoder(w).Encode(models.Club{ID: "9", ClubName: req.ClubName})
		case r.Method == http.MethodDelete && r.URL.Path == "/clubs/9":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	clubs := NewClubsClient(newTestClient(t, handler, "tok"))
	created, err := clubs.Create(context.Background(), models.ClubRequest{ClubName: "Chess"})
	require.NoError(t, err)
	assert.Equal(t, "9", created.ID)

	require.NoError(t, clubs.Delete(context.Background(), "9"))
}

func TestEvents_Count(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/events/count", r.URL.Path)
		_, _ = w.Write([]byte("17"))
	})

	events := NewEventsClient(newTestClient(t, handler, "tok"))
	n, err := events.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 17, n)
}

func TestUserEvents_RSVP(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/userEvents", r.URL.Path)
		var req models.UserEventRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_ = json.NewEncoder(w).Encode(models.UserEvent{
			ID: "5", EventID: req.EventID, Status: req.Status,
		})
	})

	ue := NewUserEventsClient(newTestClient(t, handler, "tok"))
	got, err := ue.RSVP(context.Background(), "42", models.UserEventAccepted)
	require.NoError(t, err)
	assert.Equal(t, "42", got.EventID)
	assert.Equal(t, models.UserEventAccepted, got.Status)
}

func TestDashboard_Fetch(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/dashboard", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.DashboardData{
			EventCount: 12, ClubCount: 4, AcceptanceRate: 0.7, DeclineRate: 0.1,
		})
	})

	d := NewDashboardClient(newTestClient(t, handler, "tok"))
	got, err := d.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, got.EventCount)
	assert.InDelta(t, 0.7, got.AcceptanceRate, 1e-9)
}

func TestUpload_Multipart(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/upload", r.URL.Path)
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "poster.png", header.Filename)
		_ = json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example/poster.png"})
	})

	up := NewUploadClient(newTestClient(t, handler, "tok"))
	url, err := up.Upload(context.Background(), "poster.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/poster.png", url)
}

func TestClient_StatusMapping(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/events":
			w.WriteHeader(http.StatusBadGateway)
		case "/clubs":
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "token expired"})
		case "/dashboard":
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "no such thing"})
		}
	})
	c := newTestClient(t, handler, "tok")

	_, err := NewEventsClient(c).Find(context.Background())
	require.ErrorIs(t, err, gateway.ErrUnavailable)

	_, err = NewClubsClient(c).Find(context.Background())
	require.ErrorIs(t, err, gateway.ErrUnauthorized)

	_, err = NewDashboardClient(c).Fetch(context.Background())
	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "no such thing", apiErr.Message)
}

func TestClient_NoTokenOmitsHeader(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]models.Event{})
	})

	events := NewEventsClient(newTestClient(t, handler, ""))
	_, err := events.Find(context.Background())
	require.NoError(t, err)
}
