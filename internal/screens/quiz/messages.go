package quiz

import "github.com/abhisek/timedquiz/internal/store"

// timerTickMsg is one second of the question timer. Tag identifies the
// timer run it was armed for.
type timerTickMsg struct {
	Tag int
}

// attemptSavedMsg reports the outcome of persisting a finished run.
type attemptSavedMsg struct {
	SessionID string
	Attempt   store.Attempt
	Err       error
}
