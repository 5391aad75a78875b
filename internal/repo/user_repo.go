package repo

import (
	"context"
	"errors"
	"fmt"

	dom "github.com/thefueley/sonic-poc/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence.
type UserRepo interface {
	GetByID(ctx context.Context, id int64) (dom.User, error)
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	Create(ctx context.Context, username, email, passwordHash string) (dom.User, error)
}

var _ UserRepo = (*PGUserRepo)(nil)

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

const userColumns = `id, username, email, password_hash, created_at`

// GetByID returns the user by id, dom.ErrNotFound if there is none.
func (r *PGUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return dom.User{}, wrapNoRows(err, "get user by id")
	}
	return u, nil
}

// GetByUsername returns the user by username, dom.ErrNotFound if there is none.
func (r *PGUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		return dom.User{}, wrapNoRows(err, "get user by username")
	}
	return u, nil
}

// Create inserts a new user and returns it. A duplicate username or email
// surfaces as the driver's unique violation, wrapped.
func (r *PGUserRepo) Create(ctx context.Context, username, email, passwordHash string) (dom.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns
	u, err := scanUser(r.db.QueryRow(ctx, query, username, email, passwordHash))
	if err != nil {
		return dom.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (dom.User, error) {
	var u dom.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

func wrapNoRows(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
