package bridge

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// taskScheduler tracks outstanding timed side effects by handle so teardown
// can cancel every pending task deterministically instead of relying on
// timers noticing dead state on fire.
type taskScheduler struct {
	mu     sync.Mutex
	tasks  map[string]*scheduledTask
	closed bool
}

type scheduledTask struct {
	timer     *time.Timer
	cancelled bool
}

func newTaskScheduler() *taskScheduler {
	return &taskScheduler{tasks: map[string]*scheduledTask{}}
}

// Schedule runs fn after d unless the returned handle is cancelled first.
func (s *taskScheduler) Schedule(d time.Duration, fn func()) (handle string) {
	if s == nil || fn == nil {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ""
	}

	handle = uuid.NewString()
	task := &scheduledTask{}
	task.timer = time.AfterFunc(d, func() {
		s.mu.Lock()
		cancelled := task.cancelled
		delete(s.tasks, handle)
		s.mu.Unlock()

		if !cancelled {
			fn()
		}
	})
	s.tasks[handle] = task
	return handle
}

// Cancel stops the task for handle if it has not fired yet.
func (s *taskScheduler) Cancel(handle string) {
	if s == nil || handle == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if task, ok := s.tasks[handle]; ok {
		task.cancelled = true
		task.timer.Stop()
		delete(s.tasks, handle)
	}
}

// CancelAll synchronously cancels every outstanding task.
func (s *taskScheduler) CancelAll() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for handle, task := range s.tasks {
		task.cancelled = true
		task.timer.Stop()
		delete(s.tasks, handle)
	}
}

// Close cancels everything and rejects further scheduling.
func (s *taskScheduler) Close() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for handle, task := range s.tasks {
		task.cancelled = true
		task.timer.Stop()
		delete(s.tasks, handle)
	}
}

func (s *taskScheduler) pendingCount() int {
	if s == nil {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
