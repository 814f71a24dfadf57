package models

// Presence is one attendance record. A (StudentID, DateISO) pair is logically
// unique: marking the same student on the same day overwrites the Present
// flag instead of appending a second record.
type Presence struct {
	ID             string `json:"id"`
	StudentID      string `json:"alunoId"`
	DateISO        string `json:"dataISO"` // YYYY-MM-DD
	Present        bool   `json:"presente"`
	RecordedByName string `json:"registradoPorNome"`
	RecordedByRole Role   `json:"papel"`
	CreatedAt      string `json:"criadoEm"`
}
