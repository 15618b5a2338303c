package normalize

import (
	"fmt"
	"sort"
	"strings"

	"harmony/domain"
	"harmony/errors"

	"github.com/samber/lo"
)

const emptyRoomName = "Empty room"

// InviteSummary is the display-name decision derived from the partial
// state delivered with a pending invitation.
type InviteSummary struct {
	InvitedBy      domain.UserID
	DisplayName    string
	ExplicitName   string
	CanonicalAlias string
}

// SummarizeInvite derives a human-readable room name from invite state.
// Resolution order: explicit room name, canonical alias, then member
// names. Members are everyone in the state except the invited account,
// by display name when one is set and raw state key otherwise. The
// inviter is the sender of the last state event.
func SummarizeInvite(receiver domain.UserID, state domain.InviteState) (InviteSummary, error) {
	if len(state.Events) == 0 {
		return InviteSummary{}, errors.ErrEmptyInvite
	}

	last := state.Events[len(state.Events)-1]
	summary := InviteSummary{InvitedBy: domain.UserID(last.StringField("sender"))}

	for _, ev := range state.Events {
		switch ev.Type() {
		case domain.TypeName:
			summary.ExplicitName = ev.Child("content").StringField("name")
		case domain.TypeCanonicalAlias:
			summary.CanonicalAlias = ev.Child("content").StringField("alias")
		}
	}

	members := lo.FilterMap(state.Events, func(ev domain.RawEvent, _ int) (string, bool) {
		if ev.Type() != domain.TypeMember {
			return "", false
		}
		key := ev.StringField("state_key")
		if key == "" || key == string(receiver) {
			return "", false
		}
		if name := ev.Child("content").StringField("displayname"); name != "" {
			return name, true
		}
		return key, true
	})

	summary.DisplayName = displayName(summary, members)
	return summary, nil
}

// displayName applies the fallback chain. Two members keep their
// delivery order ("A and B"); three or more are sorted and counted
// ("A and N others", N excluding the first). Two distinct rules, kept
// distinct.
func displayName(s InviteSummary, members []string) string {
	switch {
	case s.ExplicitName != "":
		return s.ExplicitName
	case s.CanonicalAlias != "":
		return s.CanonicalAlias
	case len(members) == 0:
		return emptyRoomName
	case len(members) == 1:
		return members[0]
	case len(members) == 2:
		return strings.Join(members, " and ")
	default:
		sort.Strings(members)
		return fmt.Sprintf("%s and %d others", members[0], len(members)-1)
	}
}
