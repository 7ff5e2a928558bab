package attempt

// ExitGuard answers the hosting shell's two teardown questions: should an
// attempted navigation be confirmed with the user, and what to do when the
// session is actually torn down. Any host (browser shell, native shell,
// test harness) can poll IsExitBlocking and route its unload signal to
// HandleTeardown. The at-most-once guarantee for the background submission
// lives in the Session's state machine, not here, so racing teardown
// signals are harmless.
type ExitGuard struct {
	session *Session
}

func NewExitGuard(s *Session) *ExitGuard {
	return &ExitGuard{session: s}
}

// IsExitBlocking reports whether leaving now should be confirmed with the
// user: true exactly while the attempt is in progress. Advisory for in-app
// navigation, best-effort for browser-level unload.
func (g *ExitGuard) IsExitBlocking() bool {
	return g.session.State() == StateInProgress
}

// HandleTeardown routes a teardown signal to the session. Safe to call any
// number of times, from unmount and unload alike.
func (g *ExitGuard) HandleTeardown() {
	g.session.Dispose()
}
