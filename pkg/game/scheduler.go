package game

import (
	"sort"
	"sync"
	"time"
)

// Task 已调度的任务，Cancel 可重复调用
type Task interface {
	Cancel()
}

// Scheduler 可取消的计时器来源
// 换弹完成和环境音乐都通过它调度，测试中使用 ManualScheduler 推进时间
type Scheduler interface {
	// AfterFunc 在 d 之后执行一次 fn
	AfterFunc(d time.Duration, fn func()) Task
	// Every 每隔 d 执行一次 fn，直到取消
	Every(d time.Duration, fn func()) Task
}

// RealScheduler 基于系统时钟的调度器
// 回调在独立的 goroutine 上执行
type RealScheduler struct{}

// NewRealScheduler 创建系统时钟调度器
func NewRealScheduler() *RealScheduler {
	return &RealScheduler{}
}

type timerTask struct {
	timer *time.Timer
}

func (t *timerTask) Cancel() {
	t.timer.Stop()
}

// AfterFunc 实现 Scheduler
func (s *RealScheduler) AfterFunc(d time.Duration, fn func()) Task {
	return &timerTask{timer: time.AfterFunc(d, fn)}
}

type tickerTask struct {
	once sync.Once
	stop chan struct{}
}

func (t *tickerTask) Cancel() {
	t.once.Do(func() { close(t.stop) })
}

// Every 实现 Scheduler，间隔不大于 0 时不会执行
func (s *RealScheduler) Every(d time.Duration, fn func()) Task {
	task := &tickerTask{stop: make(chan struct{})}
	if d <= 0 {
		task.Cancel()
		return task
	}
	ticker := time.NewTicker(d)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-task.stop:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
	return task
}

// ManualScheduler 由调用方推进时间的调度器
// 回调在调用 Advance 的 goroutine 上同步执行
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	owner     *ManualScheduler
	due       time.Duration
	interval  time.Duration
	seq       uint64
	fn        func()
	cancelled bool
}

func (t *manualTask) Cancel() {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	t.cancelled = true
}

// NewManualScheduler 创建手动调度器，时间从 0 开始
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Now 当前调度器时间
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending 未取消且未执行完的任务数量
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// AfterFunc 实现 Scheduler
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) Task {
	return s.add(d, 0, fn)
}

// Every 实现 Scheduler，间隔不大于 0 时不会执行
func (s *ManualScheduler) Every(d time.Duration, fn func()) Task {
	if d <= 0 {
		return &manualTask{owner: s, cancelled: true}
	}
	return s.add(d, d, fn)
}

func (s *ManualScheduler) add(d, interval time.Duration, fn func()) *manualTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d < 0 {
		d = 0
	}
	s.seq++
	task := &manualTask{
		owner:    s,
		due:      s.now + d,
		interval: interval,
		seq:      s.seq,
		fn:       fn,
	}
	s.tasks = append(s.tasks, task)
	return task
}

// Advance 推进 d，按到期顺序执行所有到期任务
// 同时到期的任务按调度顺序执行；回调中新调度的任务若在窗口内到期也会执行
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		task := s.nextDue(target)
		if task == nil {
			break
		}
		task.fn()
	}

	s.mu.Lock()
	s.now = target
	s.mu.Unlock()
}

// nextDue 取出最早到期的任务并推进时间到它的到期点
func (s *ManualScheduler) nextDue(target time.Duration) *manualTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	s.tasks = live
	if len(s.tasks) == 0 {
		return nil
	}

	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].due != s.tasks[j].due {
			return s.tasks[i].due < s.tasks[j].due
		}
		return s.tasks[i].seq < s.tasks[j].seq
	})

	task := s.tasks[0]
	if task.due > target {
		return nil
	}

	s.now = task.due
	if task.interval > 0 {
		task.due += task.interval
		s.seq++
		task.seq = s.seq
	} else {
		task.cancelled = true
	}
	return task
}
