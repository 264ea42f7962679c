package client

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/cykrypt/registration/pkg/logger"
	"github.com/cykrypt/registration/pkg/statemachine"
	"github.com/cykrypt/registration/svc/registration"
)

// Controller is the form submission controller. It is safe for concurrent
// use; Submit releases the lock while the request is in flight.
type Controller struct {
	mu        sync.Mutex
	state     FormState
	step      int
	members   int
	honeypot  string
	openedAt  time.Time
	message   string
	status    *statusMachine
	transport Transport
	session   SessionCounter
	now       func() time.Time
	log       *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithSessionCounter replaces the default in-process session counter.
func WithSessionCounter(s SessionCounter) Option {
	return func(c *Controller) {
		if s != nil {
			c.session = s
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the controller logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// NewController creates a controller on step 1 with the form opened now.
func NewController(t Transport, opts ...Option) *Controller {
	c := &Controller{
		transport: t,
		now:       time.Now,
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.session == nil {
		c.session = NewSessionCounter(0)
	}
	c.log = c.log.With(logger.Component("registration.client"))
	c.status = newStatusMachine(c.session, c.log)
	c.clear()
	return c
}

func (c *Controller) clear() {
	c.state = newFormState()
	c.step = StepTeam
	c.members = registration.MinMembers
	c.honeypot = ""
	c.message = ""
	c.openedAt = c.now()
}

// SetField stores a raw value and re-validates the current step.
func (c *Controller) SetField(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Values[key] = value
	c.revalidate(false)
}

// SetHoneypot sets the hidden field a human never fills in.
func (c *Controller) SetHoneypot(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.honeypot = value
}

// Blur sanitizes a free-text field value and marks the field touched.
func (c *Controller) Blur(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.state.Values[key]; ok {
		c.state.Values[key] = cleanValue(key, v)
	}
	c.state.Touched[key] = true
	c.revalidate(false)
}

// Next advances when the current step is valid. Otherwise every field of the
// step is touched so its errors become visible.
func (c *Controller) Next() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.revalidate(true) {
		return false
	}
	if c.step < StepMembers {
		c.step++
		c.revalidate(false)
	}
	return true
}

// Back returns to the previous step.
func (c *Controller) Back() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step > StepTeam {
		c.step--
		c.revalidate(false)
	}
}

// AddMember adds the optional third member.
func (c *Controller) AddMember() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.members >= registration.MaxMembers {
		return false
	}
	c.members++
	c.revalidate(false)
	return true
}

// RemoveMember removes the optional member at index i. The first
// MinMembers members cannot be removed.
func (c *Controller) RemoveMember(i int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i < registration.MinMembers || i >= c.members {
		return false
	}
	for _, f := range []string{registration.MemberName, registration.MemberPhone, registration.MemberEmail} {
		key := registration.MemberKey(i, f)
		delete(c.state.Values, key)
		delete(c.state.Touched, key)
		delete(c.state.Errors, key)
		delete(c.state.Warnings, key)
	}
	c.members--
	c.revalidate(false)
	return true
}

// revalidate replaces the current step's errors and warnings. With touch
// set every field of the step is marked touched.
func (c *Controller) revalidate(touch bool) bool {
	fields := stepFields(c.step, c.members)
	for _, k := range fields {
		delete(c.state.Errors, k)
		delete(c.state.Warnings, k)
		if touch {
			c.state.Touched[k] = true
		}
	}

	out := validateStep(c.step, c.state.registration(c.members))
	maps.Copy(c.state.Errors, out.Errors)
	maps.Copy(c.state.Warnings, out.Warnings)
	if touch {
		for k := range out.Errors {
			c.state.Touched[k] = true
		}
	}
	return out.Valid()
}

// Submit is the final step: it validates the member step, applies the
// anti-bot guards and sends the registration. It fails with ErrInvalidStep
// before the member step is reached. A tripped honeypot ends in
// StatusSuccess without any request.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()

	if !c.status.CanFire(ctx, triggerSubmit, submitAttempt{}) {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotSubmitting, c.status.Current())
	}

	if c.step != StepMembers {
		c.mu.Unlock()
		return fmt.Errorf("%w: submit from step %d", ErrInvalidStep, c.step)
	}
	if !c.revalidate(true) {
		c.mu.Unlock()
		return ErrInvalidStep
	}

	if registration.HoneypotTripped(c.honeypot) {
		c.log.WarnContext(ctx, "honeypot filled, skipping submission")
		c.message = ""
		err := c.status.Fire(ctx, triggerSucceed, nil)
		c.mu.Unlock()
		return err
	}

	if registration.IsTimingSuspicious(c.openedAt, c.now()) {
		c.reject(ctx, MsgTooFast)
		c.mu.Unlock()
		return ErrTooFast
	}

	if err := c.status.Fire(ctx, triggerSubmit, submitAttempt{sessionCount: c.session.Count()}); err != nil {
		if statemachine.IsTransitionRejected(err) {
			c.reject(ctx, MsgSessionCap)
			err = ErrSessionCap
		}
		c.mu.Unlock()
		return err
	}
	c.message = ""

	reg := c.state.registration(c.members).Sanitized()
	reg.Signals = registration.AntiBotSignals{Honeypot: c.honeypot, FormOpenedAt: c.openedAt}
	payload := registration.NewPayload(reg)
	c.mu.Unlock()

	reply, sendErr := c.transport.Send(ctx, payload)

	c.mu.Lock()
	defer c.mu.Unlock()

	if sendErr != nil {
		c.log.ErrorContext(ctx, "registration request failed", logger.Error(sendErr))
		c.message = MsgNetwork
		_ = c.status.Fire(ctx, triggerFail, nil)
		return sendErr
	}

	if !reply.OK() {
		c.message = cmp.Or(reply.Error, MsgUnknownFailed)
		for k, v := range reply.FieldErrors {
			c.state.Errors[k] = v
			c.state.Touched[k] = true
		}
		c.log.WarnContext(ctx, "registration rejected",
			logger.StatusCode(reply.StatusCode),
			logger.Fields(reply.FieldErrors),
		)
		_ = c.status.Fire(ctx, triggerFail, nil)
		return fmt.Errorf("%w: %d %s", ErrRejected, reply.StatusCode, reply.Error)
	}

	return c.status.Fire(ctx, triggerSucceed, nil)
}

func (c *Controller) reject(ctx context.Context, msg string) {
	c.message = msg
	c.log.WarnContext(ctx, "submission blocked", logger.Reason(msg))
	_ = c.status.Fire(ctx, triggerReject, nil)
}

// Reset clears the form, returns to step 1 and restarts the fill timer.
// It fails while a submission is in flight.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.status.Fire(context.Background(), triggerReset, nil); err != nil {
		return errors.Join(ErrNotSubmitting, err)
	}
	c.clear()
	return nil
}

// Status returns the submission status.
func (c *Controller) Status() Status {
	return c.status.Current()
}

// Message returns the latest status message for the user, if any.
func (c *Controller) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// Step returns the current step (1 to 3).
func (c *Controller) Step() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Members returns the number of member slots on the form.
func (c *Controller) Members() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.members
}

// Fields returns the field keys of the current step in display order.
func (c *Controller) Fields() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.DeleteFunc(stepFields(c.step, c.members), func(k string) bool {
		return strings.HasPrefix(k, "_")
	})
}

// VisibleErrors returns the errors of touched fields.
func (c *Controller) VisibleErrors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.visibleErrors()
}

// Warnings returns non-blocking hints such as e-mail typo suggestions.
func (c *Controller) Warnings() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.state.Warnings)
}

// State returns a copy of the form state.
func (c *Controller) State() FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}
