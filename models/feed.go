package models

// ReactionKind is one of the three reactions a post supports.
type ReactionKind string

const (
	ReactionLike  ReactionKind = "gostei"
	ReactionHeart ReactionKind = "coracao"
	ReactionParty ReactionKind = "festa"
)

// ValidReaction reports whether k is a known reaction kind.
func ValidReaction(k ReactionKind) bool {
	return k == ReactionLike || k == ReactionHeart || k == ReactionParty
}

// PostKind classifies a feed post.
type PostKind string

const (
	PostNotice PostKind = "aviso"
	PostEvent  PostKind = "evento"
	PostRoster PostKind = "escala"
)

// Reactions holds the per-kind counters of a post. Counters never go
// negative: decrements are floored at zero.
type Reactions struct {
	Like  int `json:"gostei"`
	Heart int `json:"coracao"`
	Party int `json:"festa"`
}

// Count returns the counter for kind.
func (r Reactions) Count(kind ReactionKind) int {
	switch kind {
	case ReactionLike:
		return r.Like
	case ReactionHeart:
		return r.Heart
	case ReactionParty:
		return r.Party
	}
	return 0
}

// Add bumps the counter for kind by delta, floored at zero.
func (r *Reactions) Add(kind ReactionKind, delta int) {
	bump := func(n int) int {
		n += delta
		if n < 0 {
			n = 0
		}
		return n
	}
	switch kind {
	case ReactionLike:
		r.Like = bump(r.Like)
	case ReactionHeart:
		r.Heart = bump(r.Heart)
	case ReactionParty:
		r.Party = bump(r.Party)
	}
}

// Comment is an append-only comment on a post. Approved is always true at
// creation; there is no moderation workflow.
type Comment struct {
	AuthorName string `json:"nome"`
	Text       string `json:"texto"`
	Approved   bool   `json:"aprovado"`
}

// FeedItem is a social feed post. ReactionsByUser tracks the single active
// reaction per user id; an empty value means the user cleared their reaction
// (old backups store an explicit null there, which decodes to "").
type FeedItem struct {
	ID              string                  `json:"id"`
	Text            string                  `json:"texto"`
	Public          bool                    `json:"publico"`
	Mentions        []string                `json:"mencionados"`
	Kind            PostKind                `json:"tipo"`
	CreatedAt       string                  `json:"criadoEm"`
	AuthorName      string                  `json:"criadoPorNome"`
	Reactions       Reactions               `json:"reacoes"`
	Comments        []Comment               `json:"comentarios"`
	ReactionsByUser map[string]ReactionKind `json:"usuariosQueReagiram"`
}

// UserReaction returns the active reaction of userID on the post, if any.
func (f *FeedItem) UserReaction(userID string) (ReactionKind, bool) {
	k, ok := f.ReactionsByUser[userID]
	if !ok || k == "" {
		return "", false
	}
	return k, true
}
