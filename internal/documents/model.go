package documents

import "time"

// Processing states for an uploaded document.
const (
	StatusUploaded  = "uploaded"
	StatusAnalyzing = "analyzing"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Document types recognized by the analysis pipeline.
const (
	TypeCSV  = "csv"
	TypePDF  = "pdf"
	TypeText = "text"
)

// Document represents an uploaded financial document owned by a user.
type Document struct {
	ID               string
	UserID           string
	OriginalFilename string
	StoragePath      string
	ProcessingStatus string
	DocumentType     string
	CreatedAt        time.Time
}
