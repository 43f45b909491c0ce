package checkout

type State string

const (
	StateSelectingTime     State = "selecting_time"
	StateCollectingPayment State = "collecting_payment_and_contact"
	StateConfirmed         State = "confirmed"
)

var transitions = map[State][]State{
	StateSelectingTime:     {StateCollectingPayment},
	StateCollectingPayment: {StateSelectingTime, StateConfirmed},
}

// IsTerminal reports whether the session is finished. A new session must be
// started to order again.
func (s State) IsTerminal() bool {
	return s == StateConfirmed
}

func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

func (s State) String() string {
	return string(s)
}
