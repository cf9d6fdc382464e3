package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/r2vault/internal/common"
	"github.com/dmitrijs2005/r2vault/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const insertQuery = `(?s)^INSERT\s+INTO\s+users\s*\(id,\s*username,\s*display_name,\s*password_hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+created_at\s*$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now()
	rows := sqlmock.NewRows([]string{"created_at"}).AddRow(created)
	mock.ExpectQuery(insertQuery).
		WithArgs(sqlmock.AnyArg(), "alice", "Alice", "hash").
		WillReturnRows(rows)

	a := &models.Account{Username: "alice", DisplayName: "Alice", PasswordHash: "hash"}
	got, err := repo.Create(context.Background(), a)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" || got.Username != "alice" {
		t.Fatalf("unexpected account: %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("created_at not scanned: %+v", got)
	}
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs(sqlmock.AnyArg(), "alice", "Alice", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	_, err := repo.Create(context.Background(), &models.Account{Username: "alice", DisplayName: "Alice", PasswordHash: "hash"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected ErrorAlreadyExists, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs(sqlmock.AnyArg(), "alice", "Alice", "hash").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Account{Username: "alice", DisplayName: "Alice", PasswordHash: "hash"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

const selectQuery = `(?s)^SELECT\s+id,\s*username,\s*display_name,\s*password_hash,\s*created_at\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s*$`

func TestGetByUsername_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "username", "display_name", "password_hash", "created_at"}).
		AddRow("u-1", "alice", "Alice", "hash", time.Now())
	mock.ExpectQuery(selectQuery).
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if got.ID != "u-1" || got.DisplayName != "Alice" {
		t.Fatalf("unexpected account: %+v", got)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQuery).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
