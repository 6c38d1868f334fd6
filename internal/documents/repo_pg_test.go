package documents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoBeginAnalysisFromRetryableStates(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer mockDB.Close()

	// Both uploaded and failed documents may enter analysis.
	mock.ExpectExec(`UPDATE processed_documents`).
		WithArgs(StatusAnalyzing, "d1", "u1", StatusUploaded, StatusFailed).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: mockDB}
	if err := repo.BeginAnalysis(context.Background(), "u1", "d1"); err != nil {
		t.Fatalf("begin analysis: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoBeginAnalysisRejectsInFlightDocument(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer mockDB.Close()

	mock.ExpectExec(`UPDATE processed_documents`).
		WithArgs(StatusAnalyzing, "d1", "u1", StatusUploaded, StatusFailed).
		WillReturnResult(sqlmock.NewResult(0, 0))
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "original_filename", "storage_path", "processing_status", "document_type", "created_at",
	}).AddRow("d1", "u1", "book.csv", "u1/book.csv", StatusAnalyzing, TypeCSV, time.Now())
	mock.ExpectQuery(`SELECT id, user_id, original_filename`).
		WithArgs("d1", "u1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: mockDB}
	err = repo.BeginAnalysis(context.Background(), "u1", "d1")
	if !errors.Is(err, ErrNotAnalyzable) {
		t.Fatalf("err = %v, want ErrNotAnalyzable", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestMemoryRepoBeginAnalysisAfterFailure(t *testing.T) {
	repo := NewMemoryRepo()
	doc := Document{ID: "d1", UserID: "u1", ProcessingStatus: StatusFailed, CreatedAt: time.Now()}
	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.BeginAnalysis(context.Background(), "u1", "d1"); err != nil {
		t.Fatalf("begin analysis after failure: %v", err)
	}
	got, err := repo.GetByID(context.Background(), "u1", "d1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ProcessingStatus != StatusAnalyzing {
		t.Fatalf("status = %s, want analyzing", got.ProcessingStatus)
	}
	if err := repo.BeginAnalysis(context.Background(), "u1", "d1"); !errors.Is(err, ErrNotAnalyzable) {
		t.Fatalf("err = %v, want ErrNotAnalyzable", err)
	}
}
