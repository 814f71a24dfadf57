package models

// FileKind is the document type of a library entry.
type FileKind string

const (
	FilePDF FileKind = "pdf"
	FileTXT FileKind = "txt"
)

// FileEntry is a document in the ministry library.
type FileEntry struct {
	ID        string   `json:"id"`
	Title     string   `json:"titulo"`
	Kind      FileKind `json:"tipo"`
	URL       string   `json:"url"`
	CreatedAt string   `json:"criadoEm"`
}
