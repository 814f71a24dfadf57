package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcikids/portal/models"
)

func item(id, author, createdAt string, public bool, mentions ...string) models.FeedItem {
	return models.FeedItem{
		ID:         id,
		Text:       "post " + id,
		Public:     public,
		Mentions:   mentions,
		Kind:       models.PostNotice,
		CreatedAt:  createdAt,
		AuthorName: author,
	}
}

func ids(feed []models.FeedItem) []string {
	out := make([]string, len(feed))
	for i, f := range feed {
		out[i] = f.ID
	}
	return out
}

func sampleFeed() []models.FeedItem {
	return []models.FeedItem{
		item("a", "Líder", "2026-08-01T10:00:00.000Z", true),
		item("b", "Carla", "2026-08-03T10:00:00.000Z", false),
		item("c", "Líder", "2026-08-02T10:00:00.000Z", false, "carla"),
		item("d", "Rute", "2026-08-04T10:00:00.000Z", false),
	}
}

func TestFinanceTotals(t *testing.T) {
	offerings := []models.Offering{
		{Category: models.CategoryOffering, Direction: models.DirectionIn, Amount: 100},
		{Category: models.CategoryOffering, Direction: models.DirectionOut, Amount: 30},
		{Category: models.CategoryExpense, Direction: models.DirectionOut, Amount: 50},
		{Category: models.CategoryExpense, Direction: models.DirectionIn, Amount: 7},
	}
	totals := FinanceTotals(offerings)
	require.Equal(t, Totals{Entries: 100, Exits: 30, Balance: 70}, totals)

	require.Equal(t, Totals{}, FinanceTotals(nil))
}

func TestVisibleFeedLeaderSeesEverything(t *testing.T) {
	got := VisibleFeed(sampleFeed(), &models.User{ID: "lider-1", Name: "Líder", Role: models.RoleLeader}, "")
	require.Equal(t, []string{"d", "b", "c", "a"}, ids(got))
}

func TestVisibleFeedHelper(t *testing.T) {
	user := &models.User{ID: "aux-1", Name: "Carla", Role: models.RoleHelper}
	got := VisibleFeed(sampleFeed(), user, "")
	// public (a), authored by Carla (b), mentions "carla" case-insensitively
	// (c); "d" is private, foreign and does not mention her.
	require.Equal(t, []string{"b", "c", "a"}, ids(got))
}

func TestVisibleFeedMentionMatchIsCaseInsensitiveExact(t *testing.T) {
	feed := []models.FeedItem{
		item("x", "Líder", "2026-08-01T10:00:00.000Z", false, "CARLA"),
		item("y", "Líder", "2026-08-02T10:00:00.000Z", false, "carlinha"),
	}
	user := &models.User{ID: "aux-1", Name: "carla", Role: models.RoleHelper}
	require.Equal(t, []string{"x"}, ids(VisibleFeed(feed, user, "")))
}

func TestVisibleFeedGuestSeesPublicOnly(t *testing.T) {
	require.Equal(t, []string{"a"}, ids(VisibleFeed(sampleFeed(), nil, "")))

	guest := &models.User{ID: "vis-1", Name: "", Role: models.RoleGuest}
	require.Equal(t, []string{"a"}, ids(VisibleFeed(sampleFeed(), guest, "")))
}

func TestVisibleFeedProfileFilter(t *testing.T) {
	leader := &models.User{ID: "lider-1", Name: "Líder", Role: models.RoleLeader}
	got := VisibleFeed(sampleFeed(), leader, "Líder")
	require.Equal(t, []string{"c", "a"}, ids(got))

	// Filter applies before the role rules: a helper filtering on another
	// author still only sees what is visible to them.
	user := &models.User{ID: "aux-1", Name: "Carla", Role: models.RoleHelper}
	got = VisibleFeed(sampleFeed(), user, "Rute")
	require.Empty(t, got)
}

func TestPublicFeedSortedDescending(t *testing.T) {
	feed := []models.FeedItem{
		item("old", "Líder", "2026-08-01T10:00:00.000Z", true),
		item("hidden", "Líder", "2026-08-02T10:00:00.000Z", false),
		item("new", "Líder", "2026-08-03T10:00:00.000Z", true),
	}
	require.Equal(t, []string{"new", "old"}, ids(PublicFeed(feed)))
}

func TestVisibleFeedDoesNotMutateInput(t *testing.T) {
	feed := sampleFeed()
	VisibleFeed(feed, nil, "")
	require.Equal(t, []string{"a", "b", "c", "d"}, ids(feed))
}
