package registration

import "time"

// Payload is the JSON body exchanged between the form client and
// POST /api/register. FormOpenedAt travels as Unix milliseconds.
type Payload struct {
	TeamName string   `json:"teamName"`
	Event    string   `json:"event"`
	College  string   `json:"college"`
	CTFMode  string   `json:"ctfMode"`
	Leader   Leader   `json:"leader"`
	Members  []Member `json:"members"`
	Honeypot string   `json:"_hp"`
	OpenedAt int64    `json:"_ts"`
}

// Registration converts the wire payload. A non-positive _ts yields a zero
// FormOpenedAt.
func (p Payload) Registration() Registration {
	reg := Registration{
		TeamName: p.TeamName,
		Event:    Event(p.Event),
		College:  p.College,
		CTFMode:  CTFMode(p.CTFMode),
		Leader:   p.Leader,
		Members:  append([]Member(nil), p.Members...),
		Signals:  AntiBotSignals{Honeypot: p.Honeypot},
	}
	if p.OpenedAt > 0 {
		reg.Signals.FormOpenedAt = time.UnixMilli(p.OpenedAt)
	}
	return reg
}

// NewPayload builds the wire payload for reg.
func NewPayload(reg Registration) Payload {
	p := Payload{
		TeamName: reg.TeamName,
		Event:    string(reg.Event),
		College:  reg.College,
		CTFMode:  string(reg.CTFMode),
		Leader:   reg.Leader,
		Members:  append([]Member{}, reg.Members...),
		Honeypot: reg.Signals.Honeypot,
	}
	if !reg.Signals.FormOpenedAt.IsZero() {
		p.OpenedAt = reg.Signals.FormOpenedAt.UnixMilli()
	}
	return p
}
