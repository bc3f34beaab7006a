//go:build unix

package session

import (
	"os"
	"os/signal"
	"syscall"
)

// ResumeSignal maps SIGCONT onto foreground events: when the process is
// resumed after a shell suspend, the session gets the same treatment a
// mobile app gives returning from the background.
type ResumeSignal struct {
	ch   chan struct{}
	sigs chan os.Signal
}

func NewResumeSignal() *ResumeSignal {
	s := &ResumeSignal{
		ch:   make(chan struct{}, 1),
		sigs: make(chan os.Signal, 1),
	}
	signal.Notify(s.sigs, syscall.SIGCONT)
	go func() {
		for range s.sigs {
			select {
			case s.ch <- struct{}{}:
			default:
			}
		}
	}()
	return s
}

func (s *ResumeSignal) Foreground() <-chan struct{} { return s.ch }

// Close unregisters the OS signal handler.
func (s *ResumeSignal) Close() {
	signal.Stop(s.sigs)
	close(s.sigs)
}
