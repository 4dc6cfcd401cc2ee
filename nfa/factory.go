package nfa

// StateFactory allocates fresh States and counts how many it has produced.
// It is the scoped replacement for the Python original's process-wide
// WITH_STATS flag and TOTAL_STATES counter (spec.md §9's "re-architecture"
// redesign note): a build owns one StateFactory instead of mutating
// globals, so concurrent builds no longer need to serialize on a shared flag.
//
// A StateFactory's withStats setting must not change across a single build.
// NewBuilder takes the factory at construction time, the Graph records the
// setting when it is created, and StateFactory has no setter method (only
// SetWithStats changes it, and only for the package-level default factory).
type StateFactory struct {
	withStats bool
	count     int
}

// NewStateFactory returns a StateFactory that produces stats-bearing states
// (with depth tracking) when withStats is true.
func NewStateFactory(withStats bool) *StateFactory {
	return &StateFactory{withStats: withStats}
}

// WithStats reports whether this factory's states carry depth statistics.
func (f *StateFactory) WithStats() bool { return f.withStats }

// NewState allocates a fresh, unattached State and increments the factory's
// counter. The state's id is meaningless until the Graph that owns its
// arena assigns it; Graph.newState is what actually installs the state and
// its id.
func (f *StateFactory) NewState() *State {
	f.count++
	return &State{depth: noDepth}
}

// Count returns the number of states this factory has produced.
func (f *StateFactory) Count() int { return f.count }

// Reset zeroes the factory's counter. Safe to call between builds that
// reuse the same factory; never call it mid-build.
func (f *StateFactory) Reset() { f.count = 0 }

// Package-level default factory and wrapper functions, preserved for
// callers that want the original's global-counter ergonomics (tests,
// quick scripts) without constructing a StateFactory explicitly. This is
// NOT safe for concurrent builds — see spec.md §5; scope a StateFactory
// per build when building concurrently.
var defaultFactory = NewStateFactory(false)

// SetWithStats toggles whether the package-level default factory produces
// stats-bearing states. Must be called before building, and left alone for
// the duration of that build.
func SetWithStats(on bool) { defaultFactory.withStats = on }

// WithStatsEnabled reports the package-level default factory's current mode.
func WithStatsEnabled() bool { return defaultFactory.withStats }

// GetCount returns the package-level default factory's state count.
func GetCount() int { return defaultFactory.count }

// ResetCount zeroes the package-level default factory's state count.
func ResetCount() { defaultFactory.Reset() }
