package runtime

import (
	"encoding/json"
	"log/slog"

	"harmony/domain"

	"github.com/gookit/color"
)

// Diagnostics dumps raw events that never reach the UI: presence,
// ephemeral (typing, receipts) and unhandled types, color-coded per
// class. Off unless verbose: the dumps are noisy and only useful when
// chasing a misbehaving homeserver.
type Diagnostics struct {
	log     *slog.Logger
	verbose bool
}

func NewDiagnostics(log *slog.Logger, verbose bool) *Diagnostics {
	return &Diagnostics{log: log, verbose: verbose}
}

func (d *Diagnostics) Presence(user domain.UserID, raw domain.RawEvent) {
	d.dump(color.Yellow, "presence", user, raw)
}

func (d *Diagnostics) Ephemeral(user domain.UserID, raw domain.RawEvent) {
	d.dump(color.Magenta, "ephemeral", user, raw)
}

func (d *Diagnostics) Unhandled(user domain.UserID, raw domain.RawEvent) {
	d.dump(color.Blue, "unhandled", user, raw)
}

func (d *Diagnostics) dump(c color.Color, class string, user domain.UserID, raw domain.RawEvent) {
	if !d.verbose {
		return
	}

	pretty, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		d.log.Debug("Undumpable event", "class", class, "account", string(user), "error", err)
		return
	}
	d.log.Debug(c.Sprintf("[%s] %s\n%s", class, user, pretty))
}
