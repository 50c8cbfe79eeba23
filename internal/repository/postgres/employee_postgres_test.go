package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestEmployeePostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEmployeePostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "company", "name"}).
			AddRow("e1", "ACME", "JOHN DOE")

		mock.ExpectQuery("SELECT (.+) FROM employees WHERE id = ?").
			WithArgs("e1").
			WillReturnRows(rows)

		emp, err := repo.FindByID(ctx, "e1")

		assert.NoError(t, err)
		assert.Equal(t, "JOHN DOE", emp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM employees WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		emp, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, emp)
	})
}

func TestEmployeePostgres_ListByCompany(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEmployeePostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "company", "name"}).
		AddRow("e1", "ACME", "JANE").
		AddRow("e2", "ACME", "JOHN")

	mock.ExpectQuery("SELECT (.+) FROM employees WHERE company = ?").
		WithArgs("ACME").
		WillReturnRows(rows)

	emps, err := repo.ListByCompany(ctx, "ACME")

	assert.NoError(t, err)
	assert.Len(t, emps, 2)
	assert.Equal(t, "JANE", emps[0].Name)
}
