package models

// Registration is one submission of the family registration form.
// Append-only.
type Registration struct {
	ID               string `json:"id"`
	ChildName        string `json:"nome"`
	BirthDate        string `json:"nasc"`
	GuardianName     string `json:"resp"`
	Phone            string `json:"tel"`
	Address          string `json:"endereco"`
	EmergencyPhone   string `json:"telEmerg"`
	EmergencyContact string `json:"contatoEmerg"`
	Notes            string `json:"obs"`
	CreatedAt        string `json:"criadoEm"`
}
