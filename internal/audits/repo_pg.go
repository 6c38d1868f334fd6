package audits

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts an audit and its items in one transaction.
func (r *PGRepo) Create(ctx context.Context, audit Audit, items []AuditItem) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const auditQuery = `
INSERT INTO audit_reports (id, user_id, title, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.ExecContext(ctx, auditQuery,
		audit.ID, audit.UserID, audit.Title, audit.Status, audit.CreatedAt, audit.UpdatedAt,
	); err != nil {
		return err
	}

	const itemQuery = `
INSERT INTO audit_items (id, audit_id, category, description, amount, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, item := range items {
		if _, err := tx.ExecContext(ctx, itemQuery,
			item.ID, item.AuditID, item.Category, item.Description,
			item.Amount.StringFixed(2), item.Status, item.CreatedAt,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetByID returns an owner-scoped audit.
func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (Audit, error) {
	const query = `
SELECT id, user_id, title, status, automated_analysis, risk_scores, control_effectiveness, anomaly_detection, created_at, updated_at
FROM audit_reports
WHERE id = $1 AND user_id = $2
LIMIT 1`
	audit, err := scanAudit(r.DB.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Audit{}, ErrNotFound
		}
		return Audit{}, err
	}
	return audit, nil
}

// ListByUser lists a user's audits newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Audit, error) {
	const query = `
SELECT id, user_id, title, status, automated_analysis, risk_scores, control_effectiveness, anomaly_detection, created_at, updated_at
FROM audit_reports
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Audit
	for rows.Next() {
		audit, err := scanAudit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, audit)
	}
	return out, rows.Err()
}

// ListItems lists an audit's items oldest-first.
func (r *PGRepo) ListItems(ctx context.Context, auditID string) ([]AuditItem, error) {
	const query = `
SELECT id, audit_id, category, description, amount, status, created_at
FROM audit_items
WHERE audit_id = $1
ORDER BY created_at ASC, id ASC`
	rows, err := r.DB.QueryContext(ctx, query, auditID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AuditItem
	for rows.Next() {
		var item AuditItem
		var amount string
		if err := rows.Scan(&item.ID, &item.AuditID, &item.Category, &item.Description,
			&amount, &item.Status, &item.CreatedAt); err != nil {
			return nil, err
		}
		if item.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// SaveReport replaces the automated analysis columns and marks the audit completed.
func (r *PGRepo) SaveReport(ctx context.Context, userID, auditID string, report Report) error {
	summary, err := json.Marshal(report.Summary)
	if err != nil {
		return err
	}
	risk, err := json.Marshal(report.RiskScores)
	if err != nil {
		return err
	}
	controls, err := json.Marshal(report.ControlEffectiveness)
	if err != nil {
		return err
	}
	anomalies, err := json.Marshal(report.AnomalyDetection)
	if err != nil {
		return err
	}

	const query = `
UPDATE audit_reports
SET automated_analysis = $1::jsonb,
    risk_scores = $2::jsonb,
    control_effectiveness = $3::jsonb,
    anomaly_detection = $4::jsonb,
    status = $5,
    updated_at = now()
WHERE id = $6 AND user_id = $7`
	res, err := r.DB.ExecContext(ctx, query, summary, risk, controls, anomalies, AuditCompleted, auditID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAudit(row rowScanner) (Audit, error) {
	var audit Audit
	var analysis, risk, controls, anomalies sql.NullString
	err := row.Scan(&audit.ID, &audit.UserID, &audit.Title, &audit.Status,
		&analysis, &risk, &controls, &anomalies, &audit.CreatedAt, &audit.UpdatedAt)
	if err != nil {
		return Audit{}, err
	}
	if analysis.Valid {
		var s Summary
		if err := json.Unmarshal([]byte(analysis.String), &s); err == nil {
			audit.AutomatedAnalysis = &s
		}
	}
	if risk.Valid {
		var s RiskScores
		if err := json.Unmarshal([]byte(risk.String), &s); err == nil {
			audit.RiskScores = &s
		}
	}
	if controls.Valid {
		var s ControlEffectiveness
		if err := json.Unmarshal([]byte(controls.String), &s); err == nil {
			audit.ControlEffectiveness = &s
		}
	}
	if anomalies.Valid {
		var s AnomalyReport
		if err := json.Unmarshal([]byte(anomalies.String), &s); err == nil {
			audit.AnomalyDetection = &s
		}
	}
	return audit, nil
}
