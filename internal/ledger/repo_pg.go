package ledger

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
)

// PGWriteOffRepo implements WriteOffRepo using Postgres.
type PGWriteOffRepo struct {
	DB *sql.DB
}

// Create inserts a write-off row.
func (r *PGWriteOffRepo) Create(ctx context.Context, w WriteOff) error {
	const query = `
INSERT INTO write_offs (id, user_id, amount, description, tax_code_id, category, date, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	var taxCodeID any
	if w.TaxCodeID != "" {
		taxCodeID = w.TaxCodeID
	}
	_, err := r.DB.ExecContext(ctx, query,
		w.ID, w.UserID, w.Amount.StringFixed(2), w.Description, taxCodeID,
		w.Category, w.Date, w.Status, w.CreatedAt,
	)
	return err
}

// ListByUser lists a user's write-offs newest-first.
func (r *PGWriteOffRepo) ListByUser(ctx context.Context, userID string) ([]WriteOff, error) {
	const query = `
SELECT id, user_id, amount, description, tax_code_id, category, date, status, created_at
FROM write_offs
WHERE user_id = $1
ORDER BY date DESC, created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WriteOff
	for rows.Next() {
		var w WriteOff
		var amount string
		var taxCodeID sql.NullString
		if err := rows.Scan(&w.ID, &w.UserID, &amount, &w.Description, &taxCodeID,
			&w.Category, &w.Date, &w.Status, &w.CreatedAt); err != nil {
			return nil, err
		}
		if w.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		if taxCodeID.Valid {
			w.TaxCodeID = taxCodeID.String
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// UpdateStatus moves a pending write-off to approved or rejected.
func (r *PGWriteOffRepo) UpdateStatus(ctx context.Context, userID, id, status string) error {
	if status != WriteOffApproved && status != WriteOffRejected {
		return ErrInvalidStatus
	}
	const query = `
UPDATE write_offs
SET status = $1
WHERE id = $2 AND user_id = $3 AND status = $4`
	res, err := r.DB.ExecContext(ctx, query, status, id, userID, WriteOffPending)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Distinguish a missing row from a non-pending one.
		var current string
		err := r.DB.QueryRowContext(ctx,
			`SELECT status FROM write_offs WHERE id = $1 AND user_id = $2`, id, userID,
		).Scan(&current)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return ErrInvalidStatus
	}
	return nil
}

var _ WriteOffRepo = (*PGWriteOffRepo)(nil)

// PGRevenueRepo implements RevenueRepo using Postgres.
type PGRevenueRepo struct {
	DB *sql.DB
}

// Create inserts a revenue row.
func (r *PGRevenueRepo) Create(ctx context.Context, rec RevenueRecord) error {
	const query = `
INSERT INTO revenue_records (id, user_id, amount, description, category, date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		rec.ID, rec.UserID, rec.Amount.StringFixed(2), rec.Description,
		rec.Category, rec.Date, rec.CreatedAt,
	)
	return err
}

// ListByUser lists a user's revenue records newest-first.
func (r *PGRevenueRepo) ListByUser(ctx context.Context, userID string) ([]RevenueRecord, error) {
	const query = `
SELECT id, user_id, amount, description, category, date, created_at
FROM revenue_records
WHERE user_id = $1
ORDER BY date DESC, created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RevenueRecord
	for rows.Next() {
		var rec RevenueRecord
		var amount string
		if err := rows.Scan(&rec.ID, &rec.UserID, &amount, &rec.Description,
			&rec.Category, &rec.Date, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if rec.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

var _ RevenueRepo = (*PGRevenueRepo)(nil)

// PGBalanceSheetRepo implements BalanceSheetRepo using Postgres.
type PGBalanceSheetRepo struct {
	DB *sql.DB
}

// Create inserts a balance sheet item.
func (r *PGBalanceSheetRepo) Create(ctx context.Context, item BalanceSheetItem) error {
	const query = `
INSERT INTO balance_sheet_items (id, user_id, category, name, amount, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	var description any
	if item.Description != "" {
		description = item.Description
	}
	_, err := r.DB.ExecContext(ctx, query,
		item.ID, item.UserID, item.Category, item.Name,
		item.Amount.StringFixed(2), description, item.CreatedAt,
	)
	return err
}

// ListByUser lists a user's balance sheet items newest-first.
func (r *PGBalanceSheetRepo) ListByUser(ctx context.Context, userID string) ([]BalanceSheetItem, error) {
	const query = `
SELECT id, user_id, category, name, amount, description, created_at
FROM balance_sheet_items
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BalanceSheetItem
	for rows.Next() {
		var item BalanceSheetItem
		var amount string
		var description sql.NullString
		if err := rows.Scan(&item.ID, &item.UserID, &item.Category, &item.Name,
			&amount, &description, &item.CreatedAt); err != nil {
			return nil, err
		}
		if item.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		if description.Valid {
			item.Description = description.String
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

var _ BalanceSheetRepo = (*PGBalanceSheetRepo)(nil)
