package registration_test

import (
	"time"

	"github.com/cykrypt/registration/svc/registration"
)

func validRegistration(openedAt time.Time) registration.Registration {
	return registration.Registration{
		TeamName: "fsociety",
		Event:    registration.EventCTF,
		College:  "IIT Madras",
		CTFMode:  registration.ModeOnline,
		Leader: registration.Leader{
			Name:     "Arun K",
			Phone:    "+91 98765-43210",
			Email:    "Arun.K@Example.com",
			YearDept: "III Year CSE",
		},
		Members: []registration.Member{
			{Name: "Priya S", Phone: "8123456780", Email: "priya@example.com"},
			{Name: "Rahul M", Phone: "9012345678", Email: "rahul@example.com"},
		},
		Signals: registration.AntiBotSignals{FormOpenedAt: openedAt},
	}
}
