package session

import "time"

// scheduledRefresh is the single armed refresh callback owned by a Manager.
// At most one is alive per Manager: every state transition cancels the
// previous one before arming its own.
type scheduledRefresh struct {
	t *time.Timer
}

func newScheduledRefresh(d time.Duration, fn func()) *scheduledRefresh {
	return &scheduledRefresh{t: time.AfterFunc(d, fn)}
}

// Cancel stops the callback if it has not fired yet. Safe on nil.
func (s *scheduledRefresh) Cancel() {
	if s != nil && s.t != nil {
		s.t.Stop()
	}
}
