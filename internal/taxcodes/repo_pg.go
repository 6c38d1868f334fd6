package taxcodes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// GetByCategory resolves a category name to its tax code row.
func (r *PGRepo) GetByCategory(ctx context.Context, category string) (TaxCode, error) {
	const query = `
SELECT id, code, expense_category, description
FROM tax_codes
WHERE expense_category = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, category))
}

// GetByID fetches a tax code row by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (TaxCode, error) {
	const query = `
SELECT id, code, expense_category, description
FROM tax_codes
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *PGRepo) scanOne(row *sql.Row) (TaxCode, error) {
	var tc TaxCode
	var description sql.NullString
	err := row.Scan(&tc.ID, &tc.Code, &tc.ExpenseCategory, &description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TaxCode{}, ErrNotFound
		}
		return TaxCode{}, err
	}
	if description.Valid {
		tc.Description = description.String
	}
	return tc, nil
}

var _ Repo = (*PGRepo)(nil)
