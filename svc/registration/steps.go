package registration

import (
	"fmt"
	"maps"
	"strings"

	"github.com/cykrypt/registration/pkg/sanitizer"
	"github.com/cykrypt/registration/pkg/validator"
)

// Field keys shared by client and server error maps.
const (
	KeyTeamName       = "teamName"
	KeyCollege        = "college"
	KeyEvent          = "event"
	KeyCTFMode        = "ctfMode"
	KeyLeaderName     = "leaderName"
	KeyLeaderPhone    = "leaderPhone"
	KeyLeaderEmail    = "leaderEmail"
	KeyLeaderYearDept = "leaderYearDept"
	KeyMembers        = "_members"
)

// Member field names used in MemberKey.
const (
	MemberName  = "name"
	MemberPhone = "phone"
	MemberEmail = "email"
)

// MemberKey returns the error-map key of a member field, e.g. "member0_phone".
func MemberKey(i int, field string) string {
	return fmt.Sprintf("member%d_%s", i, field)
}

// Outcome aggregates field results of one step.
type Outcome struct {
	Errors   map[string]string
	Warnings map[string]string
}

func newOutcome() Outcome {
	return Outcome{
		Errors:   make(map[string]string),
		Warnings: make(map[string]string),
	}
}

// Valid reports whether no field failed. Warnings do not count.
func (o Outcome) Valid() bool {
	return len(o.Errors) == 0
}

func (o Outcome) add(key string, r Result) {
	if !r.Valid {
		o.Errors[key] = r.Error
	}
	if r.Warning != "" {
		o.Warnings[key] = r.Warning
	}
}

func (o Outcome) merge(other Outcome) {
	maps.Copy(o.Errors, other.Errors)
	maps.Copy(o.Warnings, other.Warnings)
}

// ValidateStep1 validates the team step.
func ValidateStep1(teamName, college string) Outcome {
	o := newOutcome()
	o.add(KeyTeamName, ValidateTeamName(teamName))
	o.add(KeyCollege, ValidateCollege(college))
	return o
}

var (
	eventLabels = labels(Events)
	ctfModes    = labels([]CTFMode{ModeOnline, ModeOffline})
)

func labels[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// ValidateEvent validates the event selection and, for CTF events, the
// participation mode.
func ValidateEvent(event Event, mode CTFMode) Outcome {
	rules := []validator.Rule{
		validator.OneOf(KeyEvent, string(event), eventLabels).WithMessage("Please select an event"),
	}
	if event.Valid() && event.IsCTF() {
		rules = append(rules,
			validator.OneOf(KeyCTFMode, string(mode), ctfModes).WithMessage("Please select a participation mode"),
		)
	}

	o := newOutcome()
	maps.Copy(o.Errors, validator.ExtractValidationErrors(validator.Apply(rules...)).Map())
	return o
}

// ValidateStep2 validates the team leader.
func ValidateStep2(leader Leader) Outcome {
	o := newOutcome()
	o.add(KeyLeaderName, ValidateName(leader.Name))
	o.add(KeyLeaderPhone, ValidatePhone(leader.Phone))
	o.add(KeyLeaderEmail, ValidateEmail(leader.Email))
	o.add(KeyLeaderYearDept, ValidateYearDept(leader.YearDept))
	return o
}

// ValidateStep3 validates the member list. A blank field of one of the first
// MinMembers members reports "Required for member N" instead of the generic
// message.
func ValidateStep3(members []Member) Outcome {
	o := newOutcome()

	switch {
	case len(members) < MinMembers:
		o.Errors[KeyMembers] = fmt.Sprintf("At least %d team members are required", MinMembers)
	case len(members) > MaxMembers:
		o.Errors[KeyMembers] = fmt.Sprintf("At most %d team members are allowed", MaxMembers)
	}

	for i, m := range members {
		o.member(i, MemberName, m.Name, ValidateName)
		o.member(i, MemberPhone, m.Phone, ValidatePhone)
		o.member(i, MemberEmail, m.Email, ValidateEmail)
	}
	return o
}

func (o Outcome) member(i int, field, value string, validate func(string) Result) {
	key := MemberKey(i, field)
	if i < MinMembers && strings.TrimFunc(value, sanitizer.IsSpace) == "" {
		o.Errors[key] = fmt.Sprintf("Required for member %d", i+1)
		return
	}
	o.add(key, validate(value))
}

// ValidateAll runs every step against a complete registration. The caller
// should Normalize first so the CTF mode invariant holds.
func ValidateAll(reg Registration) Outcome {
	o := ValidateStep1(reg.TeamName, reg.College)
	o.merge(ValidateEvent(reg.Event, reg.CTFMode))
	o.merge(ValidateStep2(reg.Leader))
	o.merge(ValidateStep3(reg.Members))
	return o
}
