package client

import (
	"context"
	"log/slog"

	"github.com/cykrypt/registration/pkg/statemachine"
	"github.com/cykrypt/registration/svc/registration"
)

// Status is the submission status of the form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

type trigger string

const (
	triggerSubmit  trigger = "submit"
	triggerSucceed trigger = "succeed"
	triggerFail    trigger = "fail"
	triggerReject  trigger = "reject"
	triggerReset   trigger = "reset"
)

// submitAttempt is the data fired with triggerSubmit.
type submitAttempt struct {
	sessionCount int
}

type statusMachine = statemachine.Machine[Status, trigger]

// newStatusMachine wires the submission lifecycle. Submit is vetoed once the
// session cap is reached and a confirmed submission is counted against the
// session. Succeed and reject are also allowed from idle and error so guards
// that short-circuit before any request still land in a final status.
func newStatusMachine(session SessionCounter, log *slog.Logger) *statusMachine {
	tr := statemachine.WithTransition[Status, trigger]

	underCap := statemachine.WithGuard[Status, trigger](
		func(_ context.Context, _ Status, _ trigger, data any) bool {
			attempt, _ := data.(submitAttempt)
			return !registration.SessionCapReached(attempt.sessionCount)
		},
	)
	countSubmission := statemachine.WithAction[Status, trigger](
		func(context.Context, Status, Status, trigger, any) error {
			session.Increment()
			return nil
		},
	)

	return statemachine.New(StatusIdle,
		tr(StatusIdle, StatusSubmitting, triggerSubmit, underCap),
		tr(StatusError, StatusSubmitting, triggerSubmit, underCap),
		tr(StatusSubmitting, StatusSuccess, triggerSucceed, countSubmission),
		tr(StatusSubmitting, StatusError, triggerFail),
		tr(StatusIdle, StatusSuccess, triggerSucceed),
		tr(StatusError, StatusSuccess, triggerSucceed),
		tr(StatusIdle, StatusError, triggerReject),
		tr(StatusError, StatusError, triggerReject),
		tr(StatusIdle, StatusIdle, triggerReset),
		tr(StatusSuccess, StatusIdle, triggerReset),
		tr(StatusError, StatusIdle, triggerReset),
		statemachine.WithObserver(func(from, to Status, event trigger) {
			log.Debug("submission status changed",
				slog.String("from", string(from)),
				slog.String("to", string(to)),
				slog.String("trigger", string(event)),
			)
		}),
	)
}
