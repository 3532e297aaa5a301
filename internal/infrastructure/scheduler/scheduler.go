// Package scheduler runs deferred one-shot tasks on timers.
package scheduler

import (
	"sync"
	"time"

	"formup/internal/application/port/output"
)

var _ output.SchedulerPort = (*TimerScheduler)(nil)

// TimerScheduler posts tasks with time.AfterFunc. Stop cancels tasks that
// have not fired yet, and Wait blocks until running ones return.
type TimerScheduler struct {
	mu      sync.Mutex
	timers  map[*time.Timer]struct{}
	running sync.WaitGroup
	stopped bool
}

func New() *TimerScheduler {
	return &TimerScheduler{timers: make(map[*time.Timer]struct{})}
}

func (s *TimerScheduler) AfterFunc(delay time.Duration, task func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	s.running.Add(1)
	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		defer s.running.Done()

		s.mu.Lock()
		delete(s.timers, timer)
		s.mu.Unlock()

		task()
	})
	s.timers[timer] = struct{}{}
}

// Pending reports how many tasks are scheduled but not yet started.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop drops every pending task and waits for running ones to finish.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	for timer := range s.timers {
		if timer.Stop() {
			s.running.Done()
		}
		delete(s.timers, timer)
	}
	s.mu.Unlock()

	s.running.Wait()
}

// Wait blocks until every scheduled task has run.
func (s *TimerScheduler) Wait() {
	s.running.Wait()
}
