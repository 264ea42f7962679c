package registration_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cykrypt/registration/svc/registration"
)

type stubNotifier struct {
	mu       sync.Mutex
	messages []string
	err      error
	readyErr error
}

func (s *stubNotifier) Notify(_ context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, text)
	return s.err
}

func (s *stubNotifier) Ready() error { return s.readyErr }

func (s *stubNotifier) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

var fixedNow = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

func newService(n registration.Notifier) *registration.Service {
	return registration.NewService(n, registration.WithClock(func() time.Time { return fixedNow }))
}

func TestService_Submit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("relays a valid registration", func(t *testing.T) {
		t.Parallel()

		sink := &stubNotifier{}
		receipt, err := newService(sink).Submit(ctx, validRegistration(fixedNow.Add(-time.Minute)))
		require.NoError(t, err)
		assert.True(t, receipt.Relayed)
		require.Equal(t, 1, sink.calls())

		msg := sink.messages[0]
		assert.Equal(t, receipt.Message, msg)
		assert.Contains(t, msg, "fsociety")
		assert.Contains(t, msg, "IIT Madras")
		assert.Contains(t, msg, "Arun K")
		assert.Contains(t, msg, "arun.k@example.com")
	})

	t.Run("honeypot never reaches the sink", func(t *testing.T) {
		t.Parallel()

		sink := &stubNotifier{}
		reg := validRegistration(fixedNow.Add(-time.Minute))
		reg.Signals.Honeypot = "http://spam.example"
		reg.TeamName = ""

		receipt, err := newService(sink).Submit(ctx, reg)
		require.NoError(t, err)
		assert.False(t, receipt.Relayed)
		assert.Zero(t, sink.calls())
	})

	t.Run("rejected submissions log the cleaned team name", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		svc := registration.NewService(&stubNotifier{},
			registration.WithClock(func() time.Time { return fixedNow }),
			registration.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		)

		bot := validRegistration(fixedNow.Add(-time.Minute))
		bot.Signals.Honeypot = "x"
		bot.TeamName = `<script>alert(1)</script>pwn`
		_, err := svc.Submit(ctx, bot)
		require.NoError(t, err)

		fast := validRegistration(fixedNow.Add(-time.Second))
		fast.TeamName = `"onload=evil"`
		_, err = svc.Submit(ctx, fast)
		require.ErrorIs(t, err, registration.ErrSubmittedTooFast)

		invalid := validRegistration(fixedNow.Add(-time.Minute))
		invalid.TeamName = "<b>x</b>"
		_, err = svc.Submit(ctx, invalid)
		require.Error(t, err)

		out := buf.String()
		assert.NotContains(t, out, "<script>")
		assert.NotContains(t, out, "onload=")
		assert.NotContains(t, out, "<b>")
		assert.Contains(t, out, "team=alert1pwn")
	})

	t.Run("fast submission", func(t *testing.T) {
		t.Parallel()

		sink := &stubNotifier{}
		_, err := newService(sink).Submit(ctx, validRegistration(fixedNow.Add(-2*time.Second)))
		assert.ErrorIs(t, err, registration.ErrSubmittedTooFast)
		assert.Zero(t, sink.calls())
	})

	t.Run("missing timestamp", func(t *testing.T) {
		t.Parallel()

		_, err := newService(&stubNotifier{}).Submit(ctx, validRegistration(time.Time{}))
		assert.ErrorIs(t, err, registration.ErrSubmittedTooFast)
	})

	t.Run("validation errors carry field map", func(t *testing.T) {
		t.Parallel()

		sink := &stubNotifier{}
		reg := validRegistration(fixedNow.Add(-time.Minute))
		reg.Members = reg.Members[:1]
		reg.Leader.Email = "a@b"

		_, err := newService(sink).Submit(ctx, reg)
		var verr *registration.ValidationError
		require.ErrorAs(t, err, &verr)

		fields := registration.FieldErrors(err)
		assert.Contains(t, fields, registration.KeyMembers)
		assert.Contains(t, fields, registration.KeyLeaderEmail)
		assert.Zero(t, sink.calls())
	})

	t.Run("non-ctf mode is normalized before validation", func(t *testing.T) {
		t.Parallel()

		sink := &stubNotifier{}
		reg := validRegistration(fixedNow.Add(-time.Minute))
		reg.Event = registration.EventForensics
		reg.CTFMode = ""

		_, err := newService(sink).Submit(ctx, reg)
		require.NoError(t, err)
		assert.NotContains(t, sink.messages[0], "Online")
	})

	t.Run("relay failure", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("sink down")
		_, err := newService(&stubNotifier{err: boom}).Submit(ctx, validRegistration(fixedNow.Add(-time.Minute)))
		assert.ErrorIs(t, err, registration.ErrRelayFailed)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("unconfigured notifier", func(t *testing.T) {
		t.Parallel()

		sink := &stubNotifier{readyErr: errors.New("no token")}
		_, err := newService(sink).Submit(ctx, validRegistration(fixedNow.Add(-time.Minute)))
		assert.ErrorIs(t, err, registration.ErrNotConfigured)
		assert.Zero(t, sink.calls())
	})
}

func TestService_Ready(t *testing.T) {
	t.Parallel()

	assert.NoError(t, newService(&stubNotifier{}).Ready())
	assert.ErrorIs(t, newService(nil).Ready(), registration.ErrNotConfigured)
	assert.ErrorIs(t, newService(&stubNotifier{readyErr: errors.New("x")}).Ready(), registration.ErrNotConfigured)
}
