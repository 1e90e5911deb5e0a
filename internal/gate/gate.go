// Package gate throttles evidence submission so a burst of violating frames
// produces a single evidence record per kind for a session.
package gate

import "sync"

// Kind tags the category of dispatch being throttled.
type Kind string

const (
	// KindEvidence covers frame violations: extra people and prohibited
	// objects share one bucket, so whichever fires first suppresses the
	// other for the rest of the connection.
	KindEvidence Kind = "evidence"
	// KindLiveness covers the one-shot liveness confirmation.
	KindLiveness Kind = "liveness"
)

// Gate records which kinds have already been dispatched for one session.
// It is owned by the session's connection and discarded with it; a
// reconnect starts fresh. Safe for concurrent use.
type Gate struct {
	mu   sync.Mutex
	sent map[Kind]struct{}
}

// New returns an empty gate.
func New() *Gate {
	return &Gate{sent: make(map[Kind]struct{})}
}

// ShouldDispatch reports whether the kind may be dispatched now and, when it
// may, records the dispatch in the same step. Concurrent callers racing on
// the same kind see exactly one true result.
func (g *Gate) ShouldDispatch(kind Kind) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.sent[kind]; ok {
		return false
	}
	g.sent[kind] = struct{}{}
	return true
}

// Sent reports whether the kind has already been dispatched.
func (g *Gate) Sent(kind Kind) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.sent[kind]
	return ok
}
