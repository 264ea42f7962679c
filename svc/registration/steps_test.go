package registration_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cykrypt/registration/svc/registration"
)

func TestValidateStep1(t *testing.T) {
	t.Parallel()

	assert.True(t, registration.ValidateStep1("fsociety", "IIT Madras").Valid())

	out := registration.ValidateStep1("", "IT")
	assert.False(t, out.Valid())
	assert.Equal(t, "Team name is required", out.Errors[registration.KeyTeamName])
	assert.Equal(t, "College name must be at least 3 characters", out.Errors[registration.KeyCollege])
}

func TestValidateEvent(t *testing.T) {
	t.Parallel()

	assert.True(t, registration.ValidateEvent(registration.EventCTF, registration.ModeOffline).Valid())
	assert.True(t, registration.ValidateEvent(registration.EventPaper, registration.ModeNotApplicable).Valid())

	out := registration.ValidateEvent("Quiz", "")
	assert.Equal(t, "Please select an event", out.Errors[registration.KeyEvent])

	assert.NotContains(t, out.Errors, registration.KeyCTFMode)

	out = registration.ValidateEvent("Fake CTF", "")
	assert.Equal(t, map[string]string{registration.KeyEvent: "Please select an event"}, out.Errors)

	out = registration.ValidateEvent(registration.EventCTF, registration.ModeNotApplicable)
	assert.Equal(t, "Please select a participation mode", out.Errors[registration.KeyCTFMode])

	out = registration.ValidateEvent(registration.EventCTF, "online")
	assert.Equal(t, "Please select a participation mode", out.Errors[registration.KeyCTFMode])
}

func TestValidateStep2(t *testing.T) {
	t.Parallel()

	leader := validRegistration(time.Time{}).Leader
	assert.True(t, registration.ValidateStep2(leader).Valid())

	leader.Email = "arun@gmial.com"
	out := registration.ValidateStep2(leader)
	assert.True(t, out.Valid())
	assert.Equal(t, "Did you mean arun@gmail.com?", out.Warnings[registration.KeyLeaderEmail])

	out = registration.ValidateStep2(registration.Leader{})
	assert.Len(t, out.Errors, 4)
	assert.Contains(t, out.Errors, registration.KeyLeaderName)
	assert.Contains(t, out.Errors, registration.KeyLeaderPhone)
	assert.Contains(t, out.Errors, registration.KeyLeaderEmail)
	assert.Contains(t, out.Errors, registration.KeyLeaderYearDept)
}

func TestValidateStep3(t *testing.T) {
	t.Parallel()

	members := validRegistration(time.Time{}).Members

	t.Run("two valid members", func(t *testing.T) {
		t.Parallel()
		assert.True(t, registration.ValidateStep3(members).Valid())
	})

	t.Run("single member", func(t *testing.T) {
		t.Parallel()

		out := registration.ValidateStep3(members[:1])
		assert.Equal(t, "At least 2 team members are required", out.Errors[registration.KeyMembers])
	})

	t.Run("four members", func(t *testing.T) {
		t.Parallel()

		four := append(append([]registration.Member{}, members...), members...)
		out := registration.ValidateStep3(four)
		assert.Equal(t, "At most 3 team members are allowed", out.Errors[registration.KeyMembers])
	})

	t.Run("blank mandatory member field", func(t *testing.T) {
		t.Parallel()

		in := append([]registration.Member{}, members...)
		in[1].Phone = "  "
		out := registration.ValidateStep3(in)
		require.Len(t, out.Errors, 1)
		assert.Equal(t, "Required for member 2", out.Errors[registration.MemberKey(1, registration.MemberPhone)])
	})

	t.Run("non-breaking spaces count as blank", func(t *testing.T) {
		t.Parallel()

		in := append([]registration.Member{}, members...)
		in[0].Name = "\u00a0\ufeff"
		out := registration.ValidateStep3(in)
		require.Len(t, out.Errors, 1)
		assert.Equal(t, "Required for member 1", out.Errors[registration.MemberKey(0, registration.MemberName)])
	})

	t.Run("invalid optional member uses field message", func(t *testing.T) {
		t.Parallel()

		in := append(append([]registration.Member{}, members...), registration.Member{Name: "X", Phone: "123", Email: "x@y"})
		out := registration.ValidateStep3(in)
		assert.Equal(t, "Name must be at least 2 characters", out.Errors["member2_name"])
		assert.Equal(t, "Phone number must be exactly 10 digits", out.Errors["member2_phone"])
		assert.Equal(t, "Enter a valid email address", out.Errors["member2_email"])
	})
}

func TestValidateAll(t *testing.T) {
	t.Parallel()

	reg := validRegistration(time.Time{}).Normalize()
	assert.True(t, registration.ValidateAll(reg).Valid())

	reg.TeamName = ""
	reg.Members = reg.Members[:1]
	out := registration.ValidateAll(reg)
	assert.Contains(t, out.Errors, registration.KeyTeamName)
	assert.Contains(t, out.Errors, registration.KeyMembers)
}
