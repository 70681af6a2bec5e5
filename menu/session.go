package menu

// outcome is the lifecycle state of one menu session.
type outcome int

const (
	outcomePending outcome = iota
	outcomeSelected
	outcomeCancelled
)

// session holds the transient state for one menu invocation: the ordered
// options, the current focus, and the outcome. It is mutated only by apply.
type session struct {
	options []Option
	focus   int
	state   outcome
}

func newSession(options []Option) *session {
	return &session{options: options}
}

// apply advances the state machine by one classified key. Focus wraps
// modulo the option count; KeyOther leaves the state unchanged.
func (s *session) apply(k Key) {
	n := len(s.options)
	switch k {
	case KeyUp:
		s.focus = (s.focus - 1 + n) % n
	case KeyDown:
		s.focus = (s.focus + 1) % n
	case KeyConfirm:
		s.state = outcomeSelected
	case KeyCancel:
		s.state = outcomeCancelled
	}
}
