package models

// Snapshot is the complete serializable application state. Its JSON shape is
// the backup document format and must stay stable across versions of the
// tool: collections under fixed keys plus a settings object.
type Snapshot struct {
	Students      []Student      `json:"students"`
	Presences     []Presence     `json:"presences"`
	Offerings     []Offering     `json:"offerings"`
	Feed          []FeedItem     `json:"feed"`
	Files         []FileEntry    `json:"files"`
	Registrations []Registration `json:"registrations"`
	Settings      Settings       `json:"settings"`
}

// NewSnapshot returns an empty snapshot with non-nil collections, so it
// serializes with empty arrays rather than nulls.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Students:      []Student{},
		Presences:     []Presence{},
		Offerings:     []Offering{},
		Feed:          []FeedItem{},
		Files:         []FileEntry{},
		Registrations: []Registration{},
	}
}

// Clone returns a deep copy of the snapshot. Mutations on the copy never
// alias the original's slices or maps.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Students:      append([]Student{}, s.Students...),
		Presences:     append([]Presence{}, s.Presences...),
		Offerings:     append([]Offering{}, s.Offerings...),
		Feed:          make([]FeedItem, len(s.Feed)),
		Files:         append([]FileEntry{}, s.Files...),
		Registrations: append([]Registration{}, s.Registrations...),
		Settings:      s.Settings,
	}
	for i, item := range s.Feed {
		out.Feed[i] = item.Clone()
	}
	if s.Settings.LastMonthClosure != nil {
		v := *s.Settings.LastMonthClosure
		out.Settings.LastMonthClosure = &v
	}
	if s.Settings.PresenceClosedAt != nil {
		v := *s.Settings.PresenceClosedAt
		out.Settings.PresenceClosedAt = &v
	}
	return out
}

// Clone returns a deep copy of a feed item.
func (f FeedItem) Clone() FeedItem {
	out := f
	out.Mentions = append([]string{}, f.Mentions...)
	out.Comments = append([]Comment{}, f.Comments...)
	if f.ReactionsByUser != nil {
		out.ReactionsByUser = make(map[string]ReactionKind, len(f.ReactionsByUser))
		for k, v := range f.ReactionsByUser {
			out.ReactionsByUser[k] = v
		}
	}
	return out
}
