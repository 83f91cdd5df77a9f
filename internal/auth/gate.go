package auth

import "sync"

// GateState is the verification gate's decision.
type GateState string

const (
	// GateClear lets the user through: signed out, verified, or skipped.
	GateClear GateState = "clear"
	// GateBlocked holds the user at the verification challenge.
	GateBlocked GateState = "blocked"
)

// Gate decides whether the current user must complete OTP verification
// before using the rest of the client. A session enters Blocked only
// through a fresh login; registration starts Clear because signup already
// verified the mailbox. Skip is a deliberate escape hatch: it clears the
// gate without verifying, leaving the session in a degraded, unverified
// state.
type Gate struct {
	m *Manager

	mu      sync.Mutex
	skipped bool
}

func NewGate(m *Manager) *Gate {
	return &Gate{m: m}
}

// State inspects the session on every call, so any session change is
// reflected immediately.
func (g *Gate) State() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.m.NeedsVerification() {
		return GateClear
	}
	if g.skipped {
		return GateClear
	}
	return GateBlocked
}

// Skip clears the gate without verifying. Any in-flight send keeps running
// and its result is discarded by the caller, never awaited.
func (g *Gate) Skip() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.skipped = true
}

// Reset re-arms the gate. Callers invoke it on every fresh login so a
// previously skipped user is challenged again.
func (g *Gate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.skipped = false
}
