// Package progress provides lightweight progress reporting for long-running
// helper operations.
//
// Operations that may take a while accept a Monitor. Callers that do not care
// pass nil; implementations normalize with Monitored, so a nil monitor is
// always safe.
package progress

// DefaultTotalWork is a conventional total for monitors that do not track
// precise work units.
const DefaultTotalWork = 100

// Monitor receives progress notifications from an operation.
//
// The contract is Begin once, Work any number of times, Done exactly once.
// Implementations must tolerate Done without Begin.
type Monitor interface {
	// Begin announces the task and the total number of work units.
	Begin(task string, total int)

	// Work reports that n additional units have completed.
	Work(n int)

	// Done marks the operation finished, regardless of outcome.
	Done()
}

type discard struct{}

func (discard) Begin(string, int) {}
func (discard) Work(int)          {}
func (discard) Done()             {}

// Discard returns a monitor that ignores all notifications.
func Discard() Monitor {
	return discard{}
}

// Monitored returns m if non-nil, or a discard monitor otherwise.
func Monitored(m Monitor) Monitor {
	if m != nil {
		return m
	}
	return discard{}
}

type sub struct {
	parent Monitor
	ticks  int
	used   bool
}

func (s *sub) Begin(string, int) {}

func (s *sub) Work(int) {}

func (s *sub) Done() {
	if !s.used {
		s.used = true
		s.parent.Work(s.ticks)
	}
}

// Sub returns a child monitor consuming ticks work units of the parent when
// it completes. A nil or discard parent yields a discard monitor.
func Sub(parent Monitor, ticks int) Monitor {
	if parent == nil {
		return discard{}
	}
	if _, ok := parent.(discard); ok {
		return parent
	}
	return &sub{parent: parent, ticks: ticks}
}
