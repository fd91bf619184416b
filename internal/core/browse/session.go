package browse

import "sync"

// EmptyCursor is the defined cursor position over an empty filtered set.
// Stepping from it is a no-op.
const EmptyCursor = -1

// Session holds the navigation state: the active filter and the cursor into
// the filtered set. The original tool was single-threaded; behind an HTTP
// server the state needs a lock, but the operations stay the same named
// mutations (set filter, step, reset).
type Session struct {
	mu     sync.Mutex
	filter FilterSpec
	cursor int
}

// NewSession starts at the reset filter with the cursor on the first record.
func NewSession() *Session {
	return &Session{filter: ResetFilter(), cursor: 0}
}

// Filter returns the active filter spec.
func (session *Session) Filter() FilterSpec {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.filter
}

// SetFilter replaces the filter and clamps the cursor against the new
// filtered-set size. It returns the clamped cursor.
func (session *Session) SetFilter(spec FilterSpec, size int) int {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.filter = spec
	session.cursor = clamp(session.cursor, size)
	return session.cursor
}

// Step moves the cursor by delta over a filtered set of the given size,
// wrapping modulo size in both directions. On an empty set it is a no-op
// and the cursor stays at [EmptyCursor].
func (session *Session) Step(delta, size int) int {
	session.mu.Lock()
	defer session.mu.Unlock()

	if size <= 0 {
		session.cursor = EmptyCursor
		return session.cursor
	}

	current := clamp(session.cursor, size)
	session.cursor = ((current+delta)%size + size) % size
	return session.cursor
}

// Clamp re-validates the cursor against the given size without moving it,
// used when the filtered set changed shape under an unchanged filter
// (e.g. after an override save).
func (session *Session) Clamp(size int) int {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.cursor = clamp(session.cursor, size)
	return session.cursor
}

// Reset restores the all-sentinel filter and rewinds the cursor.
func (session *Session) Reset() {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.filter = ResetFilter()
	session.cursor = 0
}

// clamp maps a cursor into the valid range for a set of the given size:
// the empty sentinel for an empty set, the last index when the set shrank
// below the cursor, the first index when leaving the empty state.
func clamp(cursor, size int) int {
	if size <= 0 {
		return EmptyCursor
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	return cursor
}
