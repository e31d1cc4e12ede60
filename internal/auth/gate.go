package auth

import (
	"sync"

	"go.uber.org/zap"
)

// State is the position of the gate's two-state machine.
type State string

const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// Gate is the process-wide admin switch. It moves Anonymous → Authenticated
// only through a successful Login and back only through Logout.
type Gate struct {
	mu            sync.RWMutex
	authenticated bool
	verifier      Verifier
	logger        *zap.Logger
}

// NewGate builds an anonymous gate that checks credentials with verifier.
func NewGate(verifier Verifier, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	if verifier == nil {
		verifier = VerifierFunc(func(string, string) bool { return false })
	}
	return &Gate{verifier: verifier, logger: logger}
}

// Login opens the gate when the credentials verify. A failed attempt leaves
// the current state as it was.
func (g *Gate) Login(username, password string) bool {
	if !g.verifier.Verify(username, password) {
		g.logger.Warn("admin login rejected", zap.String("username", username))
		return false
	}

	g.mu.Lock()
	g.authenticated = true
	g.mu.Unlock()

	g.logger.Info("admin logged in", zap.String("username", username))
	return true
}

// Logout closes the gate unconditionally.
func (g *Gate) Logout() {
	g.mu.Lock()
	g.authenticated = false
	g.mu.Unlock()
	g.logger.Info("admin logged out")
}

// Authenticated reports whether admin views are open.
func (g *Gate) Authenticated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.authenticated
}

// State returns the current gate state.
func (g *Gate) State() State {
	if g.Authenticated() {
		return StateAuthenticated
	}
	return StateAnonymous
}
