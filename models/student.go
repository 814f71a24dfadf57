package models

// StudentKind distinguishes enrolled students from visiting children.
type StudentKind string

const (
	StudentEnrolled StudentKind = "aluno"
	StudentGuest    StudentKind = "convidado"
)

// Student is a child on the attendance roster. Students are created from the
// attendance screen and never deleted in-app.
type Student struct {
	ID   string      `json:"id"`
	Name string      `json:"nome"`
	Kind StudentKind `json:"tipo"`
}
