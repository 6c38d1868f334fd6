package ledger

import (
	"context"
	"encoding/csv"
	"errors"
	"io"

	"finbooks-backend/internal/taxcodes"
)

var exportHeader = []string{"Date", "Description", "Amount", "Tax Code"}

// ExportWriteOffsCSV streams the owner's write-offs as CSV. Tax code IDs
// are resolved to their display codes; write-offs without a code emit an
// empty column.
func (s *Service) ExportWriteOffsCSV(ctx context.Context, userID string, w io.Writer) error {
	offs, err := s.WriteOffs.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	codes := make(map[string]string) // tax_code_id -> display code
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, off := range offs {
		code := ""
		if off.TaxCodeID != "" {
			cached, ok := codes[off.TaxCodeID]
			if !ok {
				tc, err := s.TaxCodes.GetByID(ctx, off.TaxCodeID)
				if err != nil && !errors.Is(err, taxcodes.ErrNotFound) {
					return err
				}
				cached = tc.Code
				codes[off.TaxCodeID] = cached
			}
			code = cached
		}
		row := []string{
			off.Date.Format("2006-01-02"),
			off.Description,
			off.Amount.StringFixed(2),
			code,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
