package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTimerScheduler_RunsTask(t *testing.T) {
	s := New()
	defer s.Stop()

	var calls atomic.Int32
	done := make(chan struct{})
	s.AfterFunc(10*time.Millisecond, func() {
		calls.Add(1)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run")
	}

	s.Wait()
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 0, s.Pending())
}

func TestTimerScheduler_StopDropsPending(t *testing.T) {
	s := New()

	var calls atomic.Int32
	s.AfterFunc(time.Hour, func() { calls.Add(1) })
	assert.Equal(t, 1, s.Pending())

	s.Stop()
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, int32(0), calls.Load())

	s.AfterFunc(time.Millisecond, func() { calls.Add(1) })
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load(), "tasks posted after Stop are ignored")
}

func TestTimerScheduler_StopWaitsForRunning(t *testing.T) {
	s := New()

	started := make(chan struct{})
	var finished atomic.Bool
	s.AfterFunc(0, func() {
		close(started)
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
	})

	<-started
	s.Stop()
	assert.True(t, finished.Load())
}
