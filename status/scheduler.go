package status

import (
	"sync"
	"time"

	"github.com/yllada/action-center/common"
)

type toggleRequest struct {
	capability Capability
	on         bool
}

// Scheduler runs a Poller on its own goroutine. Toggle requests are queued
// in a bounded inbox and handled between polls, so system commands never run
// on the caller's thread.
type Scheduler struct {
	mu         sync.RWMutex
	poller     *Poller
	resolution time.Duration
	running    bool
	stopChan   chan struct{}
	done       chan struct{}
	inbox      chan toggleRequest
	snapshot   Snapshot
	onChange   func(Snapshot)
}

// NewScheduler creates a scheduler that checks for due polls every
// resolution.
func NewScheduler(poller *Poller, resolution time.Duration) *Scheduler {
	if resolution <= 0 {
		resolution = common.PollResolution
	}
	return &Scheduler{
		poller:     poller,
		resolution: resolution,
		inbox:      make(chan toggleRequest, common.ToggleInboxSize),
		snapshot:   poller.Snapshot(),
	}
}

// SetOnChange sets the callback that receives a snapshot after a poll that
// changed something and after every handled toggle. It runs on the
// scheduler goroutine.
func (s *Scheduler) SetOnChange(callback func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = callback
}

// Start begins polling. The first poll runs immediately.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.done = make(chan struct{})
	stop, done := s.stopChan, s.done
	s.mu.Unlock()

	common.LogInfo("Status scheduler started (interval: %v)", s.poller.config.Interval)

	go s.runLoop(stop, done)
}

// Stop stops polling and waits for an in-flight poll or toggle to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	done := s.done
	s.mu.Unlock()

	<-done
	common.LogInfo("Status scheduler stopped")
}

// IsRunning returns whether the scheduler is running.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Snapshot returns the most recently published states.
func (s *Scheduler) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// RequestToggle queues a toggle. It never blocks: a full inbox returns
// common.ErrInboxFull.
func (s *Scheduler) RequestToggle(c Capability, on bool) error {
	s.mu.RLock()
	running := s.running
	s.mu.RUnlock()
	if !running {
		return common.ErrNotRunning
	}

	select {
	case s.inbox <- toggleRequest{capability: c, on: on}:
		return nil
	default:
		common.LogWarn("Dropping %s toggle: %v", c, common.ErrInboxFull)
		return common.ErrInboxFull
	}
}

// runLoop is the scheduler goroutine. It is the only user of the poller
// while running.
func (s *Scheduler) runLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	s.poller.Poll(s.poller.Now())
	s.publish()

	ticker := time.NewTicker(s.resolution)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if s.poller.Poll(s.poller.Now()) {
				s.publish()
			}
		case req := <-s.inbox:
			// Errors are logged by the poller; the published snapshot
			// still reflects the real state.
			_ = s.poller.Toggle(req.capability, req.on)
			s.publish()
		}
	}
}

func (s *Scheduler) publish() {
	snap := s.poller.Snapshot()

	s.mu.Lock()
	s.snapshot = snap
	callback := s.onChange
	s.mu.Unlock()

	if callback != nil {
		callback(snap)
	}
}
