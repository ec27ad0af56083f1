package checkout

import "errors"

var ErrInvalidTransition = errors.New("invalid checkout transition")

// State is the checkout lifecycle. It is an explicit tagged machine with one
// transition function rather than scattered boolean flags.
type State string

const (
	StateCart                 State = "cart"
	StateAwaitingDeliveryInfo State = "awaiting_delivery_info"
	StateAwaitingPayment      State = "awaiting_payment"
	StatePaid                 State = "paid"
	StateSpinOffered          State = "spin_offered"
	StateDone                 State = "done"
)

func (s State) String() string { return string(s) }

func (s State) IsValid() bool {
	switch s {
	case StateCart, StateAwaitingDeliveryInfo, StateAwaitingPayment, StatePaid, StateSpinOffered, StateDone:
		return true
	default:
		return false
	}
}

func NewState(s string) (State, error) {
	state := State(s)
	if !state.IsValid() {
		return "", errors.New("invalid checkout state")
	}
	return state, nil
}

func (s State) IsTerminal() bool {
	return s == StateDone
}

// Event drives the machine.
type Event string

const (
	EventStartCheckout   Event = "start_checkout"   // non-empty cart submitted
	EventDeliverySubmit  Event = "delivery_submit"  // valid delivery form
	EventPaymentCaptured Event = "payment_captured" // simulated charge or cash acceptance
	EventSpinOffered     Event = "spin_offered"     // buyer is an authenticated account
	EventFinished        Event = "finished"         // guest completion or spin recorded
)

// Transition is the single place transition legality lives. Failure before
// PAID returns the caller to the previous state; nothing here is applied
// unless the event is legal.
func Transition(from State, event Event) (State, error) {
	switch {
	case from == StateCart && event == EventStartCheckout:
		return StateAwaitingDeliveryInfo, nil
	case from == StateAwaitingDeliveryInfo && event == EventDeliverySubmit:
		return StateAwaitingPayment, nil
	case from == StateAwaitingPayment && event == EventPaymentCaptured:
		return StatePaid, nil
	case from == StatePaid && event == EventSpinOffered:
		return StateSpinOffered, nil
	case from == StatePaid && event == EventFinished:
		return StateDone, nil
	case from == StateSpinOffered && event == EventFinished:
		return StateDone, nil
	default:
		return from, ErrInvalidTransition
	}
}
