package cli

import "context"

// gated runs fn if a session is active. Otherwise the command is parked,
// the login flow runs, and on success the parked command is replayed.
// Protected content is never rendered to an unauthenticated user.
func (a *App) gated(ctx context.Context, fn func(ctx context.Context) error) error {
	if a.authenticated {
		return fn(ctx)
	}
	a.pending = fn
	printlnFn("Please sign in to continue.")
	return a.Login(ctx)
}

// replayPending runs and clears a command parked by the gate. Called after
// a successful login or signup.
func (a *App) replayPending(ctx context.Context) error {
	fn := a.pending
	a.pending = nil
	if fn == nil {
		return nil
	}
	return fn(ctx)
}
