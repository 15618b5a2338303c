package normalize

import (
	"testing"

	"harmony/domain"
	"harmony/errors"

	"github.com/stretchr/testify/require"
)

func member(stateKey, displayName string) domain.RawEvent {
	content := map[string]any{"membership": "invite"}
	if displayName != "" {
		content["displayname"] = displayName
	}
	return domain.RawEvent{
		"type":      domain.TypeMember,
		"state_key": stateKey,
		"sender":    "@inviter:example.org",
		"content":   content,
	}
}

func inviteState(events ...domain.RawEvent) domain.InviteState {
	return domain.InviteState{Events: events}
}

func TestSummarizeInvite_EmptyState(t *testing.T) {
	req := require.New(t)

	_, err := SummarizeInvite(receiver, inviteState())

	req.ErrorIs(err, errors.ErrEmptyInvite)
}

func TestSummarizeInvite_EmptyRoom(t *testing.T) {
	req := require.New(t)

	// Given the only member event is the invited account itself
	summary, err := SummarizeInvite(receiver, inviteState(member(string(receiver), "Me")))

	req.NoError(err)
	req.Equal("Empty room", summary.DisplayName)
	req.Equal(domain.UserID("@inviter:example.org"), summary.InvitedBy)
}

func TestSummarizeInvite_SoleMember(t *testing.T) {
	req := require.New(t)

	summary, err := SummarizeInvite(receiver, inviteState(member("@alice:example.org", "Alice")))

	req.NoError(err)
	req.Equal("Alice", summary.DisplayName)
}

func TestSummarizeInvite_TwoMembersJoined(t *testing.T) {
	req := require.New(t)

	summary, err := SummarizeInvite(receiver, inviteState(
		member("@alice:example.org", "Alice"),
		member("@bob:example.org", "Bob"),
	))

	req.NoError(err)
	req.Equal("Alice and Bob", summary.DisplayName)
}

func TestSummarizeInvite_ManyMembersSortedAndCounted(t *testing.T) {
	req := require.New(t)

	// Given members arriving out of lexicographic order
	summary, err := SummarizeInvite(receiver, inviteState(
		member("@carol:example.org", "Carol"),
		member("@alice:example.org", "Alice"),
		member("@bob:example.org", "Bob"),
	))

	// Then the first sorted member fronts the count of the others
	req.NoError(err)
	req.Equal("Alice and 2 others", summary.DisplayName)
}

func TestSummarizeInvite_MemberNameFallsBackToStateKey(t *testing.T) {
	req := require.New(t)

	summary, err := SummarizeInvite(receiver, inviteState(member("@alice:example.org", "")))

	req.NoError(err)
	req.Equal("@alice:example.org", summary.DisplayName)
}

func TestSummarizeInvite_ExplicitNameOverridesEverything(t *testing.T) {
	req := require.New(t)

	summary, err := SummarizeInvite(receiver, inviteState(
		member("@alice:example.org", "Alice"),
		member("@bob:example.org", "Bob"),
		domain.RawEvent{
			"type":    domain.TypeCanonicalAlias,
			"sender":  "@inviter:example.org",
			"content": map[string]any{"alias": "#room:example.org"},
		},
		domain.RawEvent{
			"type":    domain.TypeName,
			"sender":  "@inviter:example.org",
			"content": map[string]any{"name": "Project X"},
		},
	))

	req.NoError(err)
	req.Equal("Project X", summary.DisplayName)
	req.Equal("Project X", summary.ExplicitName)
	req.Equal("#room:example.org", summary.CanonicalAlias)
}

func TestSummarizeInvite_AliasBeatsMembers(t *testing.T) {
	req := require.New(t)

	summary, err := SummarizeInvite(receiver, inviteState(
		member("@alice:example.org", "Alice"),
		domain.RawEvent{
			"type":    domain.TypeCanonicalAlias,
			"sender":  "@inviter:example.org",
			"content": map[string]any{"alias": "#room:example.org"},
		},
	))

	req.NoError(err)
	req.Equal("#room:example.org", summary.DisplayName)
	req.Equal("", summary.ExplicitName)
}

func TestSummarizeInvite_LastNameEventWins(t *testing.T) {
	req := require.New(t)

	summary, err := SummarizeInvite(receiver, inviteState(
		domain.RawEvent{
			"type":    domain.TypeName,
			"sender":  "@inviter:example.org",
			"content": map[string]any{"name": "First"},
		},
		domain.RawEvent{
			"type":    domain.TypeName,
			"sender":  "@inviter:example.org",
			"content": map[string]any{"name": "Second"},
		},
	))

	req.NoError(err)
	req.Equal("Second", summary.DisplayName)
}

func TestSummarizeInvite_InvitedByTakenFromLastEvent(t *testing.T) {
	req := require.New(t)

	last := member("@alice:example.org", "Alice")
	last["sender"] = "@actual-inviter:example.org"

	summary, err := SummarizeInvite(receiver, inviteState(member("@bob:example.org", "Bob"), last))

	req.NoError(err)
	req.Equal(domain.UserID("@actual-inviter:example.org"), summary.InvitedBy)
}
