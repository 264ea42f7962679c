package registration

import (
	"fmt"
	"strings"

	"github.com/cykrypt/registration/pkg/telegram"
)

const footer = "_Transmission secured by CyberShield Relay._"

// FormatMessage renders a registration as a Markdown notification.
// Callers pass a sanitized registration; values are escaped here.
func FormatMessage(reg Registration) string {
	esc := telegram.EscapeMarkdown

	event := esc(string(reg.Event))
	if reg.Event.IsCTF() && reg.CTFMode != "" && reg.CTFMode != ModeNotApplicable {
		event += " (" + esc(string(reg.CTFMode)) + ")"
	}

	var b strings.Builder
	b.WriteString("🛡️ *NEW SQUAD REGISTRATION* 🛡️\n\n")
	fmt.Fprintf(&b, "📛 *Squad:* %s\n", esc(reg.TeamName))
	fmt.Fprintf(&b, "🎯 *Event:* %s\n", event)
	fmt.Fprintf(&b, "🏫 *College:* %s\n\n", esc(reg.College))

	b.WriteString("👤 *Mission Commander:*\n")
	fmt.Fprintf(&b, "   Name: %s\n", esc(reg.Leader.Name))
	fmt.Fprintf(&b, "   Phone: %s\n", esc(reg.Leader.Phone))
	fmt.Fprintf(&b, "   Email: %s\n", esc(reg.Leader.Email))
	fmt.Fprintf(&b, "   Year/Dept: %s\n\n", esc(reg.Leader.YearDept))

	b.WriteString("👥 *Operatives:*\n")
	for i, m := range reg.Members {
		fmt.Fprintf(&b, "   %d. %s | %s | %s\n", i+1, esc(m.Name), esc(m.Phone), esc(m.Email))
	}
	if len(reg.Members) == 0 {
		b.WriteString("   None\n")
	}

	b.WriteString("\n" + footer)
	return b.String()
}
