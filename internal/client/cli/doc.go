// Package cli implements the interactive CampusLink client: a REPL over the
// session manager and the platform's REST resources. Commands cover the auth
// lifecycle (login, signup, verify, logout), event browsing and RSVP, club
// management, and the admin dashboard.
package cli
