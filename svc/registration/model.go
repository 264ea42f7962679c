package registration

import (
	"slices"
	"strings"
	"time"

	"github.com/cykrypt/registration/pkg/sanitizer"
)

// Event identifies the competition a team registers for.
// Values are the labels shown in the form and relayed in notifications.
type Event string

const (
	EventCTF       Event = "CTF 2.0 (Hybrid)"
	EventForensics Event = "Cyber Forensics"
	EventPaper     Event = "Paper Presentation"
)

// Events lists the selectable events in display order.
var Events = []Event{EventCTF, EventForensics, EventPaper}

var eventCodes = map[Event]string{
	EventCTF:       "CTF_HYBRID",
	EventForensics: "FORENSICS",
	EventPaper:     "PAPER",
}

// Code returns the stable machine identifier of the event.
func (e Event) Code() string {
	return eventCodes[e]
}

// IsCTF reports whether the event belongs to the CTF category,
// the only one with a participation mode.
func (e Event) IsCTF() bool {
	return strings.Contains(strings.ToUpper(string(e)), "CTF")
}

// Valid reports whether e is one of the known events.
func (e Event) Valid() bool {
	return slices.Contains(Events, e)
}

// ParseEvent resolves a label or code, case-insensitively.
func ParseEvent(s string) (Event, bool) {
	s = strings.TrimSpace(s)
	for _, e := range Events {
		if strings.EqualFold(s, string(e)) || strings.EqualFold(s, e.Code()) {
			return e, true
		}
	}
	return Event(s), false
}

// CTFMode is the participation mode of a CTF team.
type CTFMode string

const (
	ModeOnline        CTFMode = "Online"
	ModeOffline       CTFMode = "Offline"
	ModeNotApplicable CTFMode = "N/A"
)

// Team size bounds. The first MinMembers members are mandatory.
const (
	MinMembers = 2
	MaxMembers = 3
)

// Leader is the team's point of contact.
type Leader struct {
	Name     string `json:"name" yaml:"name"`
	Phone    string `json:"phone" yaml:"phone"`
	Email    string `json:"email" yaml:"email"`
	YearDept string `json:"yearDept" yaml:"yearDept"`
}

// Member is a team member. Slice order is display order.
type Member struct {
	Name  string `json:"name" yaml:"name"`
	Phone string `json:"phone" yaml:"phone"`
	Email string `json:"email" yaml:"email"`
}

// AntiBotSignals travel with every submission and are never relayed.
type AntiBotSignals struct {
	Honeypot     string
	FormOpenedAt time.Time
}

// Registration is a single team submission. It is transient: it is validated,
// formatted and relayed, never stored.
type Registration struct {
	TeamName string
	Event    Event
	College  string
	CTFMode  CTFMode
	Leader   Leader
	Members  []Member
	Signals  AntiBotSignals
}

// Normalize returns a copy with the model invariants applied: the event is
// resolved to its canonical label, the CTF mode is N/A for non-CTF events and
// every e-mail address is trimmed and lower-cased.
func (r Registration) Normalize() Registration {
	if e, ok := ParseEvent(string(r.Event)); ok {
		r.Event = e
	}
	if !r.Event.IsCTF() {
		r.CTFMode = ModeNotApplicable
	}

	r.Leader.Email = normalizeEmail(r.Leader.Email)

	members := make([]Member, len(r.Members))
	for i, m := range r.Members {
		m.Email = normalizeEmail(m.Email)
		members[i] = m
	}
	r.Members = members

	return r
}

// Sanitized returns a copy with every free-text field passed through
// sanitizer.Text. Event and CTFMode are enum values and are kept as is once
// validated; anti-bot signals are left untouched.
func (r Registration) Sanitized() Registration {
	r.TeamName = sanitizer.Text(r.TeamName)
	r.College = sanitizer.Text(r.College)

	r.Leader = Leader{
		Name:     sanitizer.Text(r.Leader.Name),
		Phone:    sanitizer.Text(r.Leader.Phone),
		Email:    sanitizer.NormalizeEmail(r.Leader.Email),
		YearDept: sanitizer.Text(r.Leader.YearDept),
	}

	members := make([]Member, len(r.Members))
	for i, m := range r.Members {
		members[i] = Member{
			Name:  sanitizer.Text(m.Name),
			Phone: sanitizer.Text(m.Phone),
			Email: sanitizer.NormalizeEmail(m.Email),
		}
	}
	r.Members = members

	return r
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
