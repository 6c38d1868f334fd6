package documents

import (
	"context"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"finbooks-backend/internal/shared/storage/object"
)

// Service contains business logic for documents.
type Service struct {
	Store          object.ObjectStore
	Repo           DocumentsRepo
	StorageTimeout time.Duration
}

// Upload saves the file to object storage and records the document in
// the uploaded state.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Document, error) {
	if fileName == "" {
		return Document{}, ErrInvalidInput
	}

	saveCtx := ctx
	if s.StorageTimeout > 0 {
		var cancel context.CancelFunc
		saveCtx, cancel = context.WithTimeout(ctx, s.StorageTimeout)
		defer cancel()
	}
	storagePath, _, _, err := s.Store.Save(saveCtx, userID, fileName, r)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:               uuid.NewString(),
		UserID:           userID,
		OriginalFilename: fileName,
		StoragePath:      storagePath,
		ProcessingStatus: StatusUploaded,
		DocumentType:     typeForFilename(fileName),
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Get returns an owner-scoped document.
func (s *Service) Get(ctx context.Context, userID, id string) (Document, error) {
	return s.Repo.GetByID(ctx, userID, id)
}

// List returns the owner's documents newest-first.
func (s *Service) List(ctx context.Context, userID string) ([]Document, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// ReadContent fetches the stored bytes for a document under the
// storage timeout.
func (s *Service) ReadContent(ctx context.Context, doc Document) ([]byte, error) {
	openCtx := ctx
	if s.StorageTimeout > 0 {
		var cancel context.CancelFunc
		openCtx, cancel = context.WithTimeout(ctx, s.StorageTimeout)
		defer cancel()
	}
	rc, err := s.Store.Open(openCtx, doc.StoragePath)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func typeForFilename(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".csv":
		return TypeCSV
	case ".pdf":
		return TypePDF
	default:
		return TypeText
	}
}
