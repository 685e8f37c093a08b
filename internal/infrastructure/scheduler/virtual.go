package scheduler

import (
	"sort"
	"sync"
	"time"

	"github.com/bnema/edgedock/internal/application/port"
)

// Virtual is a scheduler whose time only moves when Advance is called.
// Callbacks run on the goroutine calling Advance, in deadline order, and
// never from inside AfterFunc.
type Virtual struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*virtualTimer
}

var _ port.Scheduler = (*Virtual)(nil)

type virtualTimer struct {
	v        *Virtual
	deadline time.Time
	seq      uint64
	fn       func()
	done     bool
}

// NewVirtual returns a virtual scheduler starting at start.
func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start}
}

// Now returns the virtual time.
func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// AfterFunc arms fn to run once the virtual clock reaches now+d.
func (v *Virtual) AfterFunc(d time.Duration, fn func()) port.Timer {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.seq++
	t := &virtualTimer{v: v, deadline: v.now.Add(d), seq: v.seq, fn: fn}
	v.timers = append(v.timers, t)
	return t
}

// Pending returns the number of armed timers.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.timers)
}

// Advance moves the clock forward by d, firing every timer whose deadline is
// reached. Timers armed by a callback fire in the same call if due.
func (v *Virtual) Advance(d time.Duration) {
	v.AdvanceTo(v.Now().Add(d))
}

// AdvanceTo moves the clock to target. Moving backwards is a no-op.
func (v *Virtual) AdvanceTo(target time.Time) {
	for {
		v.mu.Lock()
		next := v.nextDueLocked(target)
		if next == nil {
			if target.After(v.now) {
				v.now = target
			}
			v.mu.Unlock()
			return
		}
		if next.deadline.After(v.now) {
			v.now = next.deadline
		}
		next.done = true
		v.removeLocked(next)
		fn := next.fn
		v.mu.Unlock()

		fn()
	}
}

func (v *Virtual) nextDueLocked(target time.Time) *virtualTimer {
	if len(v.timers) == 0 {
		return nil
	}
	sort.Slice(v.timers, func(i, j int) bool {
		if v.timers[i].deadline.Equal(v.timers[j].deadline) {
			return v.timers[i].seq < v.timers[j].seq
		}
		return v.timers[i].deadline.Before(v.timers[j].deadline)
	})
	if first := v.timers[0]; !first.deadline.After(target) {
		return first
	}
	return nil
}

func (v *Virtual) removeLocked(t *virtualTimer) {
	for i, cur := range v.timers {
		if cur == t {
			v.timers = append(v.timers[:i], v.timers[i+1:]...)
			return
		}
	}
}

func (t *virtualTimer) Stop() bool {
	t.v.mu.Lock()
	defer t.v.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	t.v.removeLocked(t)
	return true
}
