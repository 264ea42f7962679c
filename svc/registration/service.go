package registration

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cykrypt/registration/pkg/logger"
	"github.com/cykrypt/registration/pkg/sanitizer"
)

// Notifier delivers a formatted registration message.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// readier is implemented by notifiers that can report missing configuration.
type readier interface {
	Ready() error
}

// Receipt describes an accepted submission. Relayed is false when the
// submission was silently dropped as a bot.
type Receipt struct {
	Relayed bool
	Message string
}

// Service validates, sanitizes and relays registrations.
type Service struct {
	notifier Notifier
	log      *slog.Logger
	now      func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock replaces time.Now for the timing guard.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a service relaying to n.
func NewService(n Notifier, opts ...ServiceOption) *Service {
	s := &Service{
		notifier: n,
		log:      slog.New(slog.DiscardHandler),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("registration"))
	return s
}

// Ready returns ErrNotConfigured when the notifier is missing or reports
// missing credentials.
func (s *Service) Ready() error {
	if s.notifier == nil {
		return ErrNotConfigured
	}
	if r, ok := s.notifier.(readier); ok {
		if err := r.Ready(); err != nil {
			return errors.Join(ErrNotConfigured, err)
		}
	}
	return nil
}

// Submit runs the server-side pipeline on an untrusted registration:
// honeypot, timing guard, normalization, full validation, sanitization,
// formatting and relay.
//
// A tripped honeypot returns a receipt with Relayed false and no error.
// Errors are ErrSubmittedTooFast, a *ValidationError, ErrNotConfigured or
// ErrRelayFailed joined with the notifier error.
func (s *Service) Submit(ctx context.Context, reg Registration) (Receipt, error) {
	if HoneypotTripped(reg.Signals.Honeypot) {
		s.log.WarnContext(ctx, "bot submission dropped", logger.Reason("honeypot"), logger.Team(sanitizer.Text(reg.TeamName)))
		return Receipt{}, nil
	}

	if IsTimingSuspicious(reg.Signals.FormOpenedAt, s.now()) {
		s.log.WarnContext(ctx, "bot submission rejected", logger.Reason("timing"), logger.Team(sanitizer.Text(reg.TeamName)))
		return Receipt{}, ErrSubmittedTooFast
	}

	reg = reg.Normalize()
	if out := ValidateAll(reg); !out.Valid() {
		s.log.InfoContext(ctx, "registration failed validation",
			logger.Team(sanitizer.Text(reg.TeamName)),
			logger.Fields(out.Errors),
		)
		return Receipt{}, &ValidationError{Fields: out.Errors}
	}

	if err := s.Ready(); err != nil {
		return Receipt{}, err
	}

	reg = reg.Sanitized()
	msg := FormatMessage(reg)

	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.log.ErrorContext(ctx, "registration relay failed",
			logger.Team(reg.TeamName),
			logger.Event(string(reg.Event)),
			logger.Error(err),
		)
		return Receipt{}, errors.Join(ErrRelayFailed, err)
	}

	s.log.InfoContext(ctx, "registration relayed",
		logger.Team(reg.TeamName),
		logger.Event(string(reg.Event)),
		slog.Int("members", len(reg.Members)),
	)
	return Receipt{Relayed: true, Message: msg}, nil
}
