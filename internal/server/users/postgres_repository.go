package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/r2vault/internal/common"
	"github.com/dmitrijs2005/r2vault/internal/dbx"
	"github.com/dmitrijs2005/r2vault/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the account with a fresh id. The unique index on username
// provides the atomic duplicate check; unique violations surface as
// common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {

	query :=
		`INSERT INTO users (id, username, display_name, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	account.ID = uuid.NewString()

	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.Username, account.DisplayName, account.PasswordHash).Scan(&account.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	query :=
		`SELECT id, username, display_name, password_hash, created_at FROM users
		 WHERE username = $1
		 `

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&account.ID, &account.Username, &account.DisplayName, &account.PasswordHash, &account.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}
