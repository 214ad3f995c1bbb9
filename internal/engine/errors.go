package engine

import "errors"

// Engine errors. All are local, recoverable conditions returned to the
// caller; none are fatal to the process. Every SubmitAction call yields
// either a result or one of these, never both, never neither.
var (
	ErrNoActiveSession  = errors.New("no active session for player")
	ErrNotInCombat      = errors.New("player is not in combat")
	ErrActionNotAllowed = errors.New("action not allowed in current state")
)
