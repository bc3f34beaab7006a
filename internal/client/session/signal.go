package session

import "context"

// Signal emits app lifecycle transitions. The Manager refreshes the session
// on every foreground event while authenticated, covering time spent
// suspended during which the scheduled timer could not fire.
type Signal interface {
	// Foreground returns a channel that receives an event each time the
	// app returns to the foreground.
	Foreground() <-chan struct{}
}

// WatchLifecycle consumes sig until ctx is cancelled. Each foreground event
// triggers an immediate refresh when the session is authenticated.
func (m *Manager) WatchLifecycle(ctx context.Context, sig Signal) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-sig.Foreground():
				if !ok {
					return
				}
				if m.Current().Authenticated() {
					m.refresh(ctx, 0)
				}
			}
		}
	}()
}

// ManualSignal is a Signal driven by explicit Raise calls. It backs tests
// and environments without OS-level lifecycle notifications.
type ManualSignal struct {
	ch chan struct{}
}

func NewManualSignal() *ManualSignal {
	return &ManualSignal{ch: make(chan struct{}, 1)}
}

func (s *ManualSignal) Foreground() <-chan struct{} { return s.ch }

// Raise emits one foreground event. Events are coalesced: raising while a
// previous event is still pending is a no-op.
func (s *ManualSignal) Raise() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}
