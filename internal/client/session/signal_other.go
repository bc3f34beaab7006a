//go:build !unix

package session

// ResumeSignal is inert on platforms without SIGCONT; foreground refreshes
// still happen through ManualSignal or explicit refresh calls.
type ResumeSignal struct {
	ch chan struct{}
}

func NewResumeSignal() *ResumeSignal {
	return &ResumeSignal{ch: make(chan struct{})}
}

func (s *ResumeSignal) Foreground() <-chan struct{} { return s.ch }

func (s *ResumeSignal) Close() {}
