package logger

import (
	"log/slog"
	"maps"
	"slices"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr,
// which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func StatusCode(code int) slog.Attr {
	return slog.Int("status", code)
}

func ClientIP(ip string) slog.Attr {
	return slog.String("client_ip", ip)
}

// Team records the team name under "team".
func Team(name string) slog.Attr {
	return slog.String("team", name)
}

// Event records the registration event under "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Reason records why a request was rejected.
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// Fields records the sorted keys of a field error map. Messages are left
// out so user input never reaches the log.
func Fields(errs map[string]string) slog.Attr {
	return slog.Any("fields", slices.Sorted(maps.Keys(errs)))
}
