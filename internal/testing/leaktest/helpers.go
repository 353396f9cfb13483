// Package leaktest checks that code under test does not leave goroutines behind.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker records a goroutine baseline and later asserts the
// count has returned to it
type GoroutineChecker struct {
	t        testing.TB
	baseline int
	timeout  time.Duration
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{
		t:        t,
		baseline: runtime.NumGoroutine(),
		timeout:  settleTimeout,
	}
}

// Baseline is the goroutine count recorded at construction
func (g *GoroutineChecker) Baseline() int {
	return g.baseline
}

// Check polls until at most baseline+tolerance goroutines remain, failing
// the test with a stack dump if they do not settle in time
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	if n, ok := settle(g.baseline+tolerance, g.timeout); !ok {
		g.t.Errorf("goroutine leak: baseline=%d now=%d tolerance=%d\n%s",
			g.baseline, n, tolerance, stacks())
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines running
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

func settle(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(pollInterval)
	}
}

func stacks() string {
	buf := make([]byte, 64<<10)
	return string(buf[:runtime.Stack(buf, true)])
}
