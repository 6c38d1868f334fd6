package taxcodes

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoGetByCategory(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"id", "code", "expense_category", "description"}).
		AddRow("tc-office", "OFFICE-200", "Office", "Office supplies and furnishings")
	mock.ExpectQuery(`SELECT id, code, expense_category, description`).
		WithArgs("Office").
		WillReturnRows(rows)

	repo := &PGRepo{DB: mockDB}
	tc, err := repo.GetByCategory(context.Background(), "Office")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if tc.Code != "OFFICE-200" {
		t.Fatalf("code = %q, want OFFICE-200", tc.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByCategoryNotFound(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT id, code, expense_category, description`).
		WithArgs("Groceries").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "expense_category", "description"}))

	repo := &PGRepo{DB: mockDB}
	_, err = repo.GetByCategory(context.Background(), "Groceries")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
