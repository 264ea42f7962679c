// Package statemachine implements a small generic finite state machine.
//
// States and events are any comparable types, usually string-based enums:
//
//	type Status string
//	type Trigger string
//
//	m := statemachine.New[Status, Trigger](Idle,
//	    statemachine.WithTransition(Idle, Submitting, Submit),
//	    statemachine.WithTransition(Submitting, Success, Succeed),
//	    statemachine.WithTransition(Submitting, Failed, Fail),
//	)
//	if err := m.Fire(ctx, Submit, nil); statemachine.IsNoTransition(err) {
//	    // not allowed from the current state
//	}
//
// Guards veto transitions at fire time; actions run before the state changes
// and abort the transition on error. Observers see every completed
// transition. All methods are safe for concurrent use; guards and actions run
// under the machine lock and must not call back into it.
package statemachine
