package client

import (
	"maps"
	"strings"

	"github.com/cykrypt/registration/pkg/sanitizer"
	"github.com/cykrypt/registration/svc/registration"
)

// Form steps.
const (
	StepTeam    = 1
	StepLeader  = 2
	StepMembers = 3
)

// FormState is the explicit state of the form: raw values keyed by field,
// the latest errors and warnings, and which fields the user has touched.
type FormState struct {
	Values   map[string]string
	Errors   map[string]string
	Warnings map[string]string
	Touched  map[string]bool
}

func newFormState() FormState {
	return FormState{
		Values:   make(map[string]string),
		Errors:   make(map[string]string),
		Warnings: make(map[string]string),
		Touched:  make(map[string]bool),
	}
}

func (s FormState) clone() FormState {
	return FormState{
		Values:   maps.Clone(s.Values),
		Errors:   maps.Clone(s.Errors),
		Warnings: maps.Clone(s.Warnings),
		Touched:  maps.Clone(s.Touched),
	}
}

// visibleErrors returns errors of touched fields only.
func (s FormState) visibleErrors() map[string]string {
	out := make(map[string]string)
	for k, v := range s.Errors {
		if s.Touched[k] {
			out[k] = v
		}
	}
	return out
}

func stepFields(step, members int) []string {
	switch step {
	case StepTeam:
		return []string{registration.KeyTeamName, registration.KeyCollege, registration.KeyEvent, registration.KeyCTFMode}
	case StepLeader:
		return []string{registration.KeyLeaderName, registration.KeyLeaderPhone, registration.KeyLeaderEmail, registration.KeyLeaderYearDept}
	case StepMembers:
		keys := []string{registration.KeyMembers}
		for i := range members {
			keys = append(keys,
				registration.MemberKey(i, registration.MemberName),
				registration.MemberKey(i, registration.MemberPhone),
				registration.MemberKey(i, registration.MemberEmail),
			)
		}
		return keys
	}
	return nil
}

func isPhoneKey(key string) bool {
	return key == registration.KeyLeaderPhone || strings.HasSuffix(key, "_"+registration.MemberPhone)
}

// cleanValue sanitizes free text. Phone numbers are canonicalized by the
// validator instead, and event and mode hold fixed option labels.
func cleanValue(key, value string) string {
	if isPhoneKey(key) || key == registration.KeyEvent || key == registration.KeyCTFMode {
		return value
	}
	return sanitizer.Text(value)
}

// registration builds a normalized registration from the form values.
func (s FormState) registration(members int) registration.Registration {
	v := s.Values
	reg := registration.Registration{
		TeamName: v[registration.KeyTeamName],
		Event:    registration.Event(v[registration.KeyEvent]),
		College:  v[registration.KeyCollege],
		CTFMode:  registration.CTFMode(v[registration.KeyCTFMode]),
		Leader: registration.Leader{
			Name:     v[registration.KeyLeaderName],
			Phone:    v[registration.KeyLeaderPhone],
			Email:    v[registration.KeyLeaderEmail],
			YearDept: v[registration.KeyLeaderYearDept],
		},
		Members: make([]registration.Member, members),
	}
	for i := range members {
		reg.Members[i] = registration.Member{
			Name:  v[registration.MemberKey(i, registration.MemberName)],
			Phone: v[registration.MemberKey(i, registration.MemberPhone)],
			Email: v[registration.MemberKey(i, registration.MemberEmail)],
		}
	}
	return reg.Normalize()
}

func validateStep(step int, reg registration.Registration) registration.Outcome {
	switch step {
	case StepTeam:
		out := registration.ValidateStep1(reg.TeamName, reg.College)
		ev := registration.ValidateEvent(reg.Event, reg.CTFMode)
		maps.Copy(out.Errors, ev.Errors)
		return out
	case StepLeader:
		return registration.ValidateStep2(reg.Leader)
	default:
		return registration.ValidateStep3(reg.Members)
	}
}
