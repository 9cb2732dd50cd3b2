// Package repository implements identity persistence.
//
// Provides PostgreSQL and MySQL implementations with transaction support via database.GetTx().
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/allisson/notes/internal/database"
	apperrors "github.com/allisson/notes/internal/errors"
	identityDomain "github.com/allisson/notes/internal/identity/domain"
)

// pqUniqueViolation is the SQLSTATE for unique_violation.
const pqUniqueViolation = "23505"

// PostgreSQLIdentityRepository implements Identity persistence for PostgreSQL.
type PostgreSQLIdentityRepository struct {
	db *sql.DB
}

// Create inserts a new Identity and populates its generated ID.
// A duplicate username is reported as ErrIdentityAlreadyExists.
func (p *PostgreSQLIdentityRepository) Create(ctx context.Context, identity *identityDomain.Identity) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO users (username, password, token, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		identity.Username,
		identity.Password,
		identity.Token,
		identity.IsActive,
		identity.CreatedAt,
		identity.UpdatedAt,
	).Scan(&identity.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return identityDomain.ErrIdentityAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create identity")
	}
	return nil
}

// GetByID retrieves an Identity by ID.
func (p *PostgreSQLIdentityRepository) GetByID(ctx context.Context, id int64) (*identityDomain.Identity, error) {
	query := `SELECT id, username, password, token, is_active, created_at, updated_at
			  FROM users WHERE id = $1`
	return p.getOne(ctx, query, id)
}

// GetByUsername retrieves an Identity by its unique username.
func (p *PostgreSQLIdentityRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*identityDomain.Identity, error) {
	query := `SELECT id, username, password, token, is_active, created_at, updated_at
			  FROM users WHERE username = $1`
	return p.getOne(ctx, query, username)
}

func (p *PostgreSQLIdentityRepository) getOne(
	ctx context.Context,
	query string,
	arg any,
) (*identityDomain.Identity, error) {
	querier := database.GetTx(ctx, p.db)

	var identity identityDomain.Identity
	var token sql.NullString

	err := querier.QueryRowContext(ctx, query, arg).Scan(
		&identity.ID,
		&identity.Username,
		&identity.Password,
		&token,
		&identity.IsActive,
		&identity.CreatedAt,
		&identity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, identityDomain.ErrIdentityNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get identity")
	}

	if token.Valid {
		identity.Token = &token.String
	}
	return &identity, nil
}

// UpdateToken overwrites the stored token. A nil token clears it.
func (p *PostgreSQLIdentityRepository) UpdateToken(ctx context.Context, id int64, token *string) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE users SET token = $1, updated_at = NOW() WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, token, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update identity token")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rows == 0 {
		return identityDomain.ErrIdentityNotFound
	}
	return nil
}

// NewPostgreSQLIdentityRepository creates a new PostgreSQL Identity repository.
func NewPostgreSQLIdentityRepository(db *sql.DB) *PostgreSQLIdentityRepository {
	return &PostgreSQLIdentityRepository{db: db}
}
