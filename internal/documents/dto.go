package documents

import "time"

// DocumentResponse is the outward-facing representation of a document.
type DocumentResponse struct {
	DocumentID       string    `json:"documentId"`
	FileName         string    `json:"fileName"`
	DocumentType     string    `json:"documentType"`
	ProcessingStatus string    `json:"processingStatus"`
	UploadedAt       time.Time `json:"uploadedAt"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		DocumentID:       doc.ID,
		FileName:         doc.OriginalFilename,
		DocumentType:     doc.DocumentType,
		ProcessingStatus: doc.ProcessingStatus,
		UploadedAt:       doc.CreatedAt,
	}
}
