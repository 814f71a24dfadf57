package models

// OfferingCategory separates ministry offerings from general expenses. Only
// the offering category counts toward the headline balance.
type OfferingCategory string

const (
	CategoryOffering OfferingCategory = "oferta"
	CategoryExpense  OfferingCategory = "gasto"
)

// OfferingDirection is the money flow direction of a ledger entry.
type OfferingDirection string

const (
	DirectionIn  OfferingDirection = "entrada"
	DirectionOut OfferingDirection = "saida"
)

// Offering is one append-only ledger entry. Amount is validated > 0 at
// creation; entries are never edited or removed.
type Offering struct {
	ID             string            `json:"id"`
	Category       OfferingCategory  `json:"categoria"`
	Direction      OfferingDirection `json:"tipo"`
	Amount         float64           `json:"valor"`
	Note           string            `json:"obs,omitempty"`
	CreatedAt      string            `json:"criadoEm"`
	RecordedByName string            `json:"registradoPorNome"`
	RecordedByRole Role              `json:"papel"`
}
