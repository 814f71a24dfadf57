package store

import (
	"strings"

	"github.com/mcikids/portal/common"
	"github.com/mcikids/portal/models"
)

// VisibleFeed returns the feed the given user may see, newest first,
// optionally restricted to one author (the profile filter).
func (s *Store) VisibleFeed(user *models.User, profileFilter string) []models.FeedItem {
	return VisibleFeed(s.feedCopy(), user, profileFilter)
}

// PublicFeed returns the public posts (the mural), newest first.
func (s *Store) PublicFeed() []models.FeedItem {
	return PublicFeed(s.feedCopy())
}

func (s *Store) feedCopy() []models.FeedItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.FeedItem, len(s.data.Feed))
	for i, item := range s.data.Feed {
		out[i] = item.Clone()
	}
	return out
}

// AddPost publishes a post authored by user. Blank text is rejected.
func (s *Store) AddPost(user *models.User, text string, public bool, mentions []string, kind models.PostKind) (models.FeedItem, error) {
	if user == nil {
		return models.FeedItem{}, common.ErrNotAuthenticated
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return models.FeedItem{}, common.ErrValidation
	}
	if kind != models.PostNotice && kind != models.PostEvent && kind != models.PostRoster {
		return models.FeedItem{}, common.ErrValidation
	}
	clean := []string{}
	for _, m := range mentions {
		if m = strings.TrimSpace(m); m != "" {
			clean = append(clean, m)
		}
	}
	item := models.FeedItem{
		ID:              models.NewID("post"),
		Text:            text,
		Public:          public,
		Mentions:        clean,
		Kind:            kind,
		CreatedAt:       models.NowISO(),
		AuthorName:      user.Name,
		Comments:        []models.Comment{},
		ReactionsByUser: map[string]models.ReactionKind{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Feed = append(append([]models.FeedItem{}, s.data.Feed...), item)
	s.scheduleSave()
	return item.Clone(), nil
}

// React toggles the user's reaction on a post. Reacting with the currently
// active kind clears it; reacting with another kind switches atomically, so
// a user never counts twice on the same post. Counters are floored at zero.
func (s *Store) React(user *models.User, postID string, kind models.ReactionKind) (models.FeedItem, error) {
	if user == nil {
		return models.FeedItem{}, common.ErrNotAuthenticated
	}
	if !models.ValidReaction(kind) {
		return models.FeedItem{}, common.ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.FeedItem, len(s.data.Feed))
	for i, it := range s.data.Feed {
		next[i] = it.Clone()
	}
	for i := range next {
		if next[i].ID != postID {
			continue
		}
		item := &next[i]
		if item.ReactionsByUser == nil {
			item.ReactionsByUser = map[string]models.ReactionKind{}
		}
		prev, has := item.UserReaction(user.ID)
		if has && prev == kind {
			item.Reactions.Add(kind, -1)
			delete(item.ReactionsByUser, user.ID)
		} else {
			if has {
				item.Reactions.Add(prev, -1)
			}
			item.Reactions.Add(kind, +1)
			item.ReactionsByUser[user.ID] = kind
		}
		s.data.Feed = next
		s.scheduleSave()
		return item.Clone(), nil
	}
	return models.FeedItem{}, common.ErrNotFound
}

// AddComment appends a comment to a post. Comments are never edited,
// re-ordered or removed, and are approved at creation.
func (s *Store) AddComment(user *models.User, postID, text string) (models.FeedItem, error) {
	if user == nil {
		return models.FeedItem{}, common.ErrNotAuthenticated
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return models.FeedItem{}, common.ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.FeedItem, len(s.data.Feed))
	for i, it := range s.data.Feed {
		next[i] = it.Clone()
	}
	for i := range next {
		if next[i].ID != postID {
			continue
		}
		next[i].Comments = append(next[i].Comments, models.Comment{
			AuthorName: user.Name,
			Text:       text,
			Approved:   true,
		})
		s.data.Feed = next
		s.scheduleSave()
		return next[i].Clone(), nil
	}
	return models.FeedItem{}, common.ErrNotFound
}
