package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements DocumentsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a document row.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO processed_documents (id, user_id, original_filename, storage_path, processing_status, document_type, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	var docType any
	if doc.DocumentType != "" {
		docType = doc.DocumentType
	}
	_, err := r.DB.ExecContext(ctx, query,
		doc.ID, doc.UserID, doc.OriginalFilename, doc.StoragePath,
		doc.ProcessingStatus, docType, doc.CreatedAt,
	)
	return err
}

// GetByID returns an owner-scoped document.
func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (Document, error) {
	const query = `
SELECT id, user_id, original_filename, storage_path, processing_status, document_type, created_at
FROM processed_documents
WHERE id = $1 AND user_id = $2
LIMIT 1`
	var doc Document
	var docType sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id, userID).Scan(
		&doc.ID, &doc.UserID, &doc.OriginalFilename, &doc.StoragePath,
		&doc.ProcessingStatus, &docType, &doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	if docType.Valid {
		doc.DocumentType = docType.String
	}
	return doc, nil
}

// ListByUser lists a user's documents newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Document, error) {
	const query = `
SELECT id, user_id, original_filename, storage_path, processing_status, document_type, created_at
FROM processed_documents
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var doc Document
		var docType sql.NullString
		if err := rows.Scan(&doc.ID, &doc.UserID, &doc.OriginalFilename, &doc.StoragePath,
			&doc.ProcessingStatus, &docType, &doc.CreatedAt); err != nil {
			return nil, err
		}
		if docType.Valid {
			doc.DocumentType = docType.String
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// BeginAnalysis transitions uploaded or failed -> analyzing. Failed
// documents stay retryable; the conditional update only fences out runs
// already in flight or completed.
func (r *PGRepo) BeginAnalysis(ctx context.Context, userID, id string) error {
	const query = `
UPDATE processed_documents
SET processing_status = $1
WHERE id = $2 AND user_id = $3 AND processing_status IN ($4, $5)`
	res, err := r.DB.ExecContext(ctx, query, StatusAnalyzing, id, userID, StatusUploaded, StatusFailed)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, userID, id); err != nil {
			return err
		}
		return ErrNotAnalyzable
	}
	return nil
}

// SetStatus records a processing state.
func (r *PGRepo) SetStatus(ctx context.Context, userID, id, status string) error {
	const query = `
UPDATE processed_documents
SET processing_status = $1
WHERE id = $2 AND user_id = $3`
	res, err := r.DB.ExecContext(ctx, query, status, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

var _ DocumentsRepo = (*PGRepo)(nil)
