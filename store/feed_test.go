package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mcikids/portal/common"
	"github.com/mcikids/portal/models"
)

func postBy(t *testing.T, s *Store, author *models.User, text string, public bool, mentions ...string) models.FeedItem {
	t.Helper()
	item, err := s.AddPost(author, text, public, mentions, models.PostNotice)
	require.NoError(t, err)
	return item
}

func TestAddPostValidation(t *testing.T) {
	s := newTestStore(t, &memPersister{}, time.Hour)

	_, err := s.AddPost(nil, "oi", true, nil, models.PostNotice)
	require.ErrorIs(t, err, common.ErrNotAuthenticated)

	_, err = s.AddPost(leader(), "   ", true, nil, models.PostNotice)
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = s.AddPost(leader(), "oi", true, nil, "recado")
	require.ErrorIs(t, err, common.ErrValidation)

	item, err := s.AddPost(leader(), " culto especial ", true, []string{" Carla ", ""}, models.PostEvent)
	require.NoError(t, err)
	require.Equal(t, "culto especial", item.Text)
	require.Equal(t, []string{"Carla"}, item.Mentions)
	require.Equal(t, models.Reactions{}, item.Reactions)
	require.Empty(t, item.Comments)
}

func TestReactToggleRestoresCounts(t *testing.T) {
	s := newTestStore(t, &memPersister{}, time.Hour)
	post := postBy(t, s, leader(), "aviso", true)
	user := helper("aux-1", "Carla")

	item, err := s.React(user, post.ID, models.ReactionHeart)
	require.NoError(t, err)
	require.Equal(t, 1, item.Reactions.Heart)
	kind, active := item.UserReaction(user.ID)
	require.True(t, active)
	require.Equal(t, models.ReactionHeart, kind)

	// Same kind again: toggle off, back to the original counts.
	item, err = s.React(user, post.ID, models.ReactionHeart)
	require.NoError(t, err)
	require.Equal(t, post.Reactions, item.Reactions)
	_, active = item.UserReaction(user.ID)
	require.False(t, active)
}

func TestReactSwitchNeverDoubleCounts(t *testing.T) {
	s := newTestStore(t, &memPersister{}, time.Hour)
	post := postBy(t, s, leader(), "aviso", true)
	user := helper("aux-1", "Carla")

	_, err := s.React(user, post.ID, models.ReactionHeart)
	require.NoError(t, err)
	item, err := s.React(user, post.ID, models.ReactionLike)
	require.NoError(t, err)

	require.Equal(t, 0, item.Reactions.Heart)
	require.Equal(t, 1, item.Reactions.Like)
	require.Equal(t, 0, item.Reactions.Party)
	kind, active := item.UserReaction(user.ID)
	require.True(t, active)
	require.Equal(t, models.ReactionLike, kind)
}

func TestReactCountsNeverGoNegative(t *testing.T) {
	s := newTestStore(t, &memPersister{}, time.Hour)

	// An imported post can carry a recorded reaction with a zero counter;
	// toggling it off must floor at zero instead of going negative.
	snap := models.NewSnapshot()
	snap.Feed = append(snap.Feed, models.FeedItem{
		ID:        "post-1",
		Text:      "importado",
		Public:    true,
		Kind:      models.PostNotice,
		CreatedAt: "2026-01-01T00:00:00.000Z",
		ReactionsByUser: map[string]models.ReactionKind{
			"aux-1": models.ReactionParty,
		},
	})
	s.ReplaceAll(snap)

	item, err := s.React(helper("aux-1", "Carla"), "post-1", models.ReactionParty)
	require.NoError(t, err)
	require.Equal(t, 0, item.Reactions.Party)
	_, active := item.UserReaction("aux-1")
	require.False(t, active)
}

func TestReactSingleActivePerUser(t *testing.T) {
	s := newTestStore(t, &memPersister{}, time.Hour)
	post := postBy(t, s, leader(), "aviso", true)
	user := helper("aux-1", "Carla")

	kinds := []models.ReactionKind{
		models.ReactionLike, models.ReactionHeart, models.ReactionHeart,
		models.ReactionParty, models.ReactionLike, models.ReactionLike,
	}
	var last models.FeedItem
	for _, k := range kinds {
		var err error
		last, err = s.React(user, post.ID, k)
		require.NoError(t, err)
		require.GreaterOrEqual(t, last.Reactions.Like, 0)
		require.GreaterOrEqual(t, last.Reactions.Heart, 0)
		require.GreaterOrEqual(t, last.Reactions.Party, 0)

		active := 0
		if _, ok := last.UserReaction(user.ID); ok {
			active = 1
		}
		total := last.Reactions.Like + last.Reactions.Heart + last.Reactions.Party
		require.Equal(t, active, total)
	}
	// Sequence ends on a double like: toggled off.
	_, active := last.UserReaction(user.ID)
	require.False(t, active)
}

func TestReactRejections(t *testing.T) {
	s := newTestStore(t, &memPersister{}, time.Hour)
	post := postBy(t, s, leader(), "aviso", true)

	_, err := s.React(nil, post.ID, models.ReactionLike)
	require.ErrorIs(t, err, common.ErrNotAuthenticated)

	_, err = s.React(helper("aux-1", "Carla"), post.ID, "palmas")
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = s.React(helper("aux-1", "Carla"), "post-missing", models.ReactionLike)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestReactDistinctUsers(t *testing.T) {
	s := newTestStore(t, &memPersister{}, time.Hour)
	post := postBy(t, s, leader(), "aviso", true)

	_, err := s.React(helper("aux-1", "Carla"), post.ID, models.ReactionHeart)
	require.NoError(t, err)
	item, err := s.React(helper("aux-2", "Rute"), post.ID, models.ReactionHeart)
	require.NoError(t, err)
	require.Equal(t, 2, item.Reactions.Heart)
}

func TestAddComment(t *testing.T) {
	s := newTestStore(t, &memPersister{}, time.Hour)
	post := postBy(t, s, leader(), "aviso", true)
	user := helper("aux-1", "Carla")

	_, err := s.AddComment(nil, post.ID, "oi")
	require.ErrorIs(t, err, common.ErrNotAuthenticated)

	_, err = s.AddComment(user, post.ID, "   ")
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = s.AddComment(user, "post-missing", "oi")
	require.ErrorIs(t, err, common.ErrNotFound)

	item, err := s.AddComment(user, post.ID, " amém! ")
	require.NoError(t, err)
	require.Len(t, item.Comments, 1)
	require.Equal(t, models.Comment{AuthorName: "Carla", Text: "amém!", Approved: true}, item.Comments[0])

	// Comments append in order and are never re-ordered.
	item, err = s.AddComment(user, post.ID, "segundo")
	require.NoError(t, err)
	require.Equal(t, "amém!", item.Comments[0].Text)
	require.Equal(t, "segundo", item.Comments[1].Text)
}
