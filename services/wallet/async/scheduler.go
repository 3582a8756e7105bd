package async

import (
	"context"
	"errors"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/status-im/status-gallery/common"
)

var ErrTaskOverwritten = errors.New("task overwritten")

type TaskFunc func(context.Context) (interface{}, error)

// ResultFunc is called exactly once per accepted task, from the scheduler
// goroutine, with the task result or the reason it did not complete.
type ResultFunc func(interface{}, TaskType, error)

type ReplacementPolicy = int

const (
	// ReplacementPolicyCancelOld cancels the running task of the same type and
	// replaces any pending one.
	ReplacementPolicyCancelOld ReplacementPolicy = iota
	// ReplacementPolicyIgnoreNew drops new tasks while one of the same type is
	// running or pending.
	ReplacementPolicyIgnoreNew
)

type TaskType struct {
	ID     int64
	Policy ReplacementPolicy
}

type taskContext struct {
	taskType TaskType
	taskFn   TaskFunc
	resFn    ResultFunc
	ctx      context.Context
	cancelFn context.CancelFunc
}

// Scheduler runs tasks one at a time in enqueue order. A task enqueued while
// the scheduler is idle is running when Enqueue returns. At most one task per
// TaskType is pending at any time.
type Scheduler struct {
	queue         *orderedmap.OrderedMap[TaskType, *taskContext]
	queueMutex    sync.Mutex
	current       *taskContext
	workerRunning bool

	context  context.Context
	cancelFn context.CancelFunc
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		queue:    orderedmap.New[TaskType, *taskContext](),
		context:  ctx,
		cancelFn: cancel,
	}
}

// Enqueue schedules taskFn and returns true if it was ignored because of the
// ReplacementPolicyIgnoreNew policy. resFn is not called for ignored tasks.
func (s *Scheduler) Enqueue(taskType TaskType, taskFn TaskFunc, resFn ResultFunc) (ignored bool) {
	s.queueMutex.Lock()

	var overwritten *taskContext

	if s.current != nil && s.current.taskType == taskType {
		if taskType.Policy == ReplacementPolicyIgnoreNew {
			s.queueMutex.Unlock()
			return true
		}
		s.current.cancelFn()
	}

	if pending, ok := s.queue.Get(taskType); ok {
		if taskType.Policy == ReplacementPolicyIgnoreNew {
			s.queueMutex.Unlock()
			return true
		}
		overwritten = pending
	}

	s.queue.Set(taskType, &taskContext{
		taskType: taskType,
		taskFn:   taskFn,
		resFn:    resFn,
	})

	if !s.workerRunning {
		s.workerRunning = true
		go s.run(s.startNextLocked())
	}
	s.queueMutex.Unlock()

	if overwritten != nil {
		overwritten.resFn(nil, overwritten.taskType, ErrTaskOverwritten)
	}
	return false
}

// startNextLocked moves the oldest pending task to running. It must be called
// with queueMutex held.
func (s *Scheduler) startNextLocked() *taskContext {
	pair := s.queue.Oldest()
	if pair == nil {
		s.current = nil
		s.workerRunning = false
		return nil
	}
	task := pair.Value
	s.queue.Delete(pair.Key)

	ctx, cancel := context.WithCancel(s.context)
	task.ctx = ctx
	task.cancelFn = cancel
	s.current = task
	return task
}

func (s *Scheduler) run(task *taskContext) {
	defer common.LogOnPanic()

	for task != nil {
		res, err := task.taskFn(task.ctx)
		if err == nil && task.ctx.Err() != nil {
			err = task.ctx.Err()
		}
		task.cancelFn()

		s.queueMutex.Lock()
		s.current = nil
		s.queueMutex.Unlock()

		task.resFn(res, task.taskType, err)

		s.queueMutex.Lock()
		task = s.startNextLocked()
		s.queueMutex.Unlock()
	}
}

// Stop cancels the running task and drops the pending ones, reporting
// context.Canceled to their result functions.
func (s *Scheduler) Stop() {
	s.queueMutex.Lock()
	s.cancelFn()
	dropped := make([]*taskContext, 0, s.queue.Len())
	for pair := s.queue.Oldest(); pair != nil; pair = pair.Next() {
		dropped = append(dropped, pair.Value)
	}
	s.queue = orderedmap.New[TaskType, *taskContext]()
	s.queueMutex.Unlock()

	for _, task := range dropped {
		task.resFn(nil, task.taskType, context.Canceled)
	}
}
