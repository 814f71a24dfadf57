package models

// Settings are the scalar slots persisted alongside the collections. The
// closure fields are reserved: they are stored and editable but no code path
// locks attendance or finance edits based on them.
type Settings struct {
	AccumulatedBalance     float64 `json:"accumulatedBalance"`
	LastMonthClosure       *string `json:"lastMonthClosure"`
	PresenceClosedAt       *string `json:"presenceClosedAt"`
	AllowEditsAfterClosure bool    `json:"allowEditsAfterClosure"`
}
