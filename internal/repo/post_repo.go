package repo

import (
	"context"
	"fmt"

	dom "github.com/thefueley/sonic-poc/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostRepo provides post persistence. Every returned Post carries its author's username.
type PostRepo interface {
	List(ctx context.Context) ([]dom.Post, error)
	GetByID(ctx context.Context, id int64) (dom.Post, error)
	Create(ctx context.Context, authorID int64, title, body string) (dom.Post, error)
	Update(ctx context.Context, id int64, title, body string) (dom.Post, error)
	Delete(ctx context.Context, id int64) error
}

var _ PostRepo = (*PGPostRepo)(nil)

type PGPostRepo struct {
	db *pgxpool.Pool
}

func NewPGPostRepo(db *pgxpool.Pool) *PGPostRepo {
	return &PGPostRepo{db: db}
}

const postSelect = `
	SELECT p.id, p.author_id, u.username, p.title, p.body, p.created
	FROM posts p JOIN users u ON p.author_id = u.id`

func (r *PGPostRepo) List(ctx context.Context) ([]dom.Post, error) {
	rows, err := r.db.Query(ctx, postSelect+` ORDER BY p.created DESC, p.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()
	list := []dom.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PGPostRepo) GetByID(ctx context.Context, id int64) (dom.Post, error) {
	p, err := scanPost(r.db.QueryRow(ctx, postSelect+` WHERE p.id = $1`, id))
	if err != nil {
		return dom.Post{}, wrapNoRows(err, "get post by id")
	}
	return p, nil
}

// Create inserts a post stamped with the database clock.
func (r *PGPostRepo) Create(ctx context.Context, authorID int64, title, body string) (dom.Post, error) {
	query := `
		WITH p AS (
			INSERT INTO posts (author_id, title, body, created)
			VALUES ($1, $2, $3, NOW())
			RETURNING id, author_id, title, body, created
		)
		SELECT p.id, p.author_id, u.username, p.title, p.body, p.created
		FROM p JOIN users u ON p.author_id = u.id`
	p, err := scanPost(r.db.QueryRow(ctx, query, authorID, title, body))
	if err != nil {
		return dom.Post{}, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

// Update overwrites title and body. created is never touched.
func (r *PGPostRepo) Update(ctx context.Context, id int64, title, body string) (dom.Post, error) {
	query := `
		WITH p AS (
			UPDATE posts SET title = $2, body = $3
			WHERE id = $1
			RETURNING id, author_id, title, body, created
		)
		SELECT p.id, p.author_id, u.username, p.title, p.body, p.created
		FROM p JOIN users u ON p.author_id = u.id`
	p, err := scanPost(r.db.QueryRow(ctx, query, id, title, body))
	if err != nil {
		return dom.Post{}, wrapNoRows(err, "update post")
	}
	return p, nil
}

func (r *PGPostRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dom.ErrNotFound
	}
	return nil
}

func scanPost(row pgx.Row) (dom.Post, error) {
	var p dom.Post
	err := row.Scan(&p.ID, &p.AuthorID, &p.Username, &p.Title, &p.Body, &p.Created)
	return p, err
}
