package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nbassil/campuslink/internal/client/models"
)

// ListEvents prints every event with its schedule and status.
func (a *App) ListEvents(ctx context.Context) error {
	events, err := a.events.Find(ctx)
	if err != nil {
		printlnFn("Failed to list events:", err)
		return err
	}
	if len(events) == 0 {
		printlnFn("No events.")
		return nil
	}
	for _, e := range events {
		printlnFn(formatEvent(e))
	}
	return nil
}

// ShowEvent prints one event with clubs and RSVP details.
func (a *App) ShowEvent(ctx context.Context, id string) error {
	e, err := a.events.FindOneWithDetails(ctx, id)
	if err != nil {
		printlnFn("Failed to fetch event:", err)
		return err
	}
	printlnFn(formatEvent(*e))
	if e.EventDescription != "" {
		printlnFn(e.EventDescription)
	}
	if len(e.Clubs) > 0 {
		names := make([]string, 0, len(e.Clubs))
		for _, c := range e.Clubs {
			names = append(names, c.ClubName)
		}
		printlnFn("Clubs:", strings.Join(names, ", "))
	}
	return nil
}

// AddEvent interactively creates an event. Only admins may call this; the
// backend rejects it otherwise.
func (a *App) AddEvent(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Event name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	start, err := a.getTime("Start time (RFC3339, e.g. 2026-09-01T18:00:00Z)")
	if err != nil {
		return err
	}
	end, err := a.getTime("End time (RFC3339)")
	if err != nil {
		return err
	}
	clubsLine, err := getSimpleText(a.reader, "Club ids (comma separated, optional)", os.Stdout)
	if err != nil {
		return err
	}

	var clubIDs []string
	for _, id := range strings.Split(clubsLine, ",") {
		if id = strings.TrimSpace(id); id != "" {
			clubIDs = append(clubIDs, id)
		}
	}

	created, err := a.events.Create(ctx, models.EventRequest{
		EventName:        name,
		EventDescription: description,
		StartTime:        start,
		EndTime:          end,
		ClubIDs:          clubIDs,
		Status:           models.EventStatusActive,
	})
	if err != nil {
		printlnFn("Failed to create event:", err)
		return err
	}
	printlnFn("Created event", created.ID)
	return nil
}

// ListClubs prints every club.
func (a *App) ListClubs(ctx context.Context) error {
	clubs, err := a.clubs.Find(ctx)
	if err != nil {
		printlnFn("Failed to list clubs:", err)
		return err
	}
	if len(clubs) == 0 {
		printlnFn("No clubs.")
		return nil
	}
	for _, c := range clubs {
		printlnFn(fmt.Sprintf("[%s] %s", c.ID, c.ClubName))
	}
	return nil
}

// AddClub interactively creates a club. Admin only, enforced server-side.
func (a *App) AddClub(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Club name", os.Stdout)
	if err != nil {
		return err
	}
	created, err := a.clubs.Create(ctx, models.ClubRequest{ClubName: name})
	if err != nil {
		printlnFn("Failed to create club:", err)
		return err
	}
	printlnFn("Created club", created.ID)
	return nil
}

// RSVP records the user's decision for an event.
func (a *App) RSVP(ctx context.Context, eventID string) error {
	answer, err := getSimpleText(a.reader, "Attend? (yes/no)", os.Stdout)
	if err != nil {
		return err
	}

	status := models.UserEventDeclined
	if strings.EqualFold(answer, "yes") || strings.EqualFold(answer, "y") {
		status = models.UserEventAccepted
	}

	if _, err := a.rsvps.RSVP(ctx, eventID, status); err != nil {
		printlnFn("Failed to record RSVP:", err)
		return err
	}
	printlnFn("Recorded:", string(status))
	return nil
}

// Dashboard prints the admin summary.
func (a *App) Dashboard(ctx context.Context) error {
	data, err := a.board.Fetch(ctx)
	if err != nil {
		printlnFn("Failed to fetch dashboard:", err)
		return err
	}
	printlnFn(fmt.Sprintf("Events: %d  Clubs: %d  Acceptance: %.0f%%  Decline: %.0f%%",
		data.EventCount, data.ClubCount, data.AcceptanceRate*100, data.DeclineRate*100))
	return nil
}

// Upload sends an image to the backend and prints the stored URL, for use in
// event posters.
func (a *App) Upload(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		printlnFn("Cannot open file:", err)
		return err
	}
	defer f.Close()

	url, err := a.uploads.Upload(ctx, filepath.Base(path), f)
	if err != nil {
		printlnFn("Upload failed:", err)
		return err
	}
	printlnFn("Uploaded:", url)
	return nil
}

func (a *App) getTime(prompt string) (time.Time, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return time.Time{}, err
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		printlnFn("Invalid time:", err)
		return time.Time{}, err
	}
	return ts, nil
}

func formatEvent(e models.Event) string {
	return fmt.Sprintf("[%s] %s  %s - %s  (%s)",
		e.ID, e.EventName,
		e.StartTime.Local().Format("2006-01-02 15:04"),
		e.EndTime.Local().Format("15:04"),
		e.Status)
}
