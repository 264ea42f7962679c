package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cykrypt/registration/client"
	"github.com/cykrypt/registration/svc/registration"
)

const validTeam = `teamName: fsociety
event: CTF_HYBRID
college: IIT Madras
ctfMode: Online
leader:
  name: Arun K
  phone: "+91 98765 43210"
  email: arun@gmial.com
  yearDept: III Year CSE
members:
  - {name: Priya S, phone: "8123456780", email: priya@example.com}
  - {name: Rahul M, phone: "9012345678", email: rahul@example.com}
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "team.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

type recorder struct {
	mu       sync.Mutex
	payloads []registration.Payload
}

func (r *recorder) Send(_ context.Context, p registration.Payload) (client.Reply, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, p)
	return client.Reply{StatusCode: 200, Success: true}, nil
}

// steppingClock advances a minute on every reading.
func steppingClock() func() time.Time {
	var mu sync.Mutex
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Minute)
		return now
	}
}

func execute(t *testing.T, a *app, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCmd(t *testing.T) {
	t.Parallel()

	t.Run("valid file with warning", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, defaultApp(), "", "validate", "-f", writeFile(t, validTeam))
		require.NoError(t, err)
		assert.Contains(t, out, "warning leaderEmail")
		assert.Contains(t, out, "Did you mean arun@gmail.com?")
		assert.Contains(t, out, "ok")
	})

	t.Run("invalid file", func(t *testing.T) {
		t.Parallel()

		bad := strings.Replace(validTeam, "teamName: fsociety", "teamName: x", 1)
		bad = bad[:strings.Index(bad, "  - {name: Rahul")]

		out, err := execute(t, defaultApp(), "", "validate", "-f", writeFile(t, bad))
		assert.ErrorIs(t, err, errInvalid)
		assert.Contains(t, out, "error   _members")
		assert.Contains(t, out, "error   teamName")
		assert.NotContains(t, out, "\nok")
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, defaultApp(), "", "validate", "-f", writeFile(t, validTeam+"captain: nobody\n"))
		assert.Error(t, err)
	})

	t.Run("file flag is required", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, defaultApp(), "", "validate")
		assert.Error(t, err)
	})
}

func TestRegisterCmd(t *testing.T) {
	t.Parallel()

	t.Run("prefilled from file", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		a := &app{now: steppingClock(), transport: func(string) client.Transport { return rec }}

		out, err := execute(t, a, "n\n", "register", "-f", writeFile(t, validTeam))
		require.NoError(t, err)
		assert.Contains(t, out, "Registration submitted.")
		require.Len(t, rec.payloads, 1)
		assert.Equal(t, "fsociety", rec.payloads[0].TeamName)
		assert.Equal(t, string(registration.EventCTF), rec.payloads[0].Event)
		assert.Len(t, rec.payloads[0].Members, 2)
	})

	t.Run("interactive", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		a := &app{now: steppingClock(), transport: func(string) client.Transport { return rec }}

		answers := strings.Join([]string{
			"fsociety", "IIT Madras", "paper",
			"Arun K", "9876543210", "arun@example.com", "III CSE",
			"Priya S", "8123456780", "priya@example.com",
			"Rahul M", "9012345678", "rahul@example.com",
			"n",
		}, "\n") + "\n"

		out, err := execute(t, a, answers, "register")
		require.NoError(t, err)
		assert.Contains(t, out, "Team name: ")
		assert.NotContains(t, out, "CTF mode")
		require.Len(t, rec.payloads, 1)
		assert.Equal(t, string(registration.EventPaper), rec.payloads[0].Event)
		assert.Equal(t, string(registration.ModeNotApplicable), rec.payloads[0].CTFMode)
	})

	t.Run("invalid answer is asked again", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		a := &app{now: steppingClock(), transport: func(string) client.Transport { return rec }}

		answers := strings.Join([]string{
			"x", "IIT Madras", "Cyber Forensics",
			"fsociety",
			"Arun K", "9876543210", "arun@example.com", "III CSE",
			"Priya S", "8123456780", "priya@example.com",
			"Rahul M", "9012345678", "rahul@example.com",
			"n",
		}, "\n") + "\n"

		out, err := execute(t, a, answers, "register")
		require.NoError(t, err)
		assert.Contains(t, out, "Team name must be at least 2 characters")
		require.Len(t, rec.payloads, 1)
		assert.Equal(t, "fsociety", rec.payloads[0].TeamName)
	})

	t.Run("input ends early", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, &app{now: steppingClock(), transport: func(string) client.Transport { return &recorder{} }}, "fsociety\n", "register")
		assert.Error(t, err)
	})
}
