package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/allisson/notes/internal/database"
	apperrors "github.com/allisson/notes/internal/errors"
	identityDomain "github.com/allisson/notes/internal/identity/domain"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// MySQLIdentityRepository implements Identity persistence for MySQL.
type MySQLIdentityRepository struct {
	db *sql.DB
}

// Create inserts a new Identity and populates its generated ID from LAST_INSERT_ID().
// A duplicate username is reported as ErrIdentityAlreadyExists.
func (m *MySQLIdentityRepository) Create(ctx context.Context, identity *identityDomain.Identity) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO users (username, password, token, is_active, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		identity.Username,
		identity.Password,
		identity.Token,
		identity.IsActive,
		identity.CreatedAt,
		identity.UpdatedAt,
	)
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
			return identityDomain.ErrIdentityAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create identity")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get identity id")
	}
	identity.ID = id
	return nil
}

// GetByID retrieves an Identity by ID.
func (m *MySQLIdentityRepository) GetByID(ctx context.Context, id int64) (*identityDomain.Identity, error) {
	query := `SELECT id, username, password, token, is_active, created_at, updated_at
			  FROM users WHERE id = ?`
	return m.getOne(ctx, query, id)
}

// GetByUsername retrieves an Identity by its unique username.
func (m *MySQLIdentityRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*identityDomain.Identity, error) {
	query := `SELECT id, username, password, token, is_active, created_at, updated_at
			  FROM users WHERE username = ?`
	return m.getOne(ctx, query, username)
}

func (m *MySQLIdentityRepository) getOne(
	ctx context.Context,
	query string,
	arg any,
) (*identityDomain.Identity, error) {
	querier := database.GetTx(ctx, m.db)

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
// MySQL reports zero affected rows when the value is unchanged, so existence is
// the caller's concern.
func (m *MySQLIdentityRepository) UpdateToken(ctx context.Context, id int64, token *string) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE users SET token = ?, updated_at = NOW() WHERE id = ?`

	if _, err := querier.ExecContext(ctx, query, token, id); err != nil {
		return apperrors.Wrap(err, "failed to update identity token")
	}
	return nil
}

// NewMySQLIdentityRepository creates a new MySQL Identity repository.
func NewMySQLIdentityRepository(db *sql.DB) *MySQLIdentityRepository {
	return &MySQLIdentityRepository{db: db}
}
