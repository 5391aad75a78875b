package service

import (
	"context"
	"strconv"
	"strings"

	dom "github.com/thefueley/sonic-poc/internal/domain"
	"github.com/thefueley/sonic-poc/internal/logger"
	"github.com/thefueley/sonic-poc/internal/repo"

	"golang.org/x/sync/singleflight"
)

// PostListCache stores the rendered-order post list between writes.
// GetList reports the cache generation it looked at; SetList must be given
// that generation so a list loaded before a write is never served after it.
type PostListCache interface {
	GetList(ctx context.Context) ([]dom.Post, int64, error)
	SetList(ctx context.Context, gen int64, list []dom.Post) error
	Invalidate(ctx context.Context) error
}

type PostService struct {
	repo   repo.PostRepo
	cache  PostListCache
	logger *logger.Logger
	sf     singleflight.Group
}

// NewPostService creates a PostService. If c is nil, caching is disabled.
func NewPostService(r repo.PostRepo, c PostListCache, logger *logger.Logger) *PostService {
	return &PostService{repo: r, cache: c, logger: logger}
}

// List returns every post, most recent first.
func (s *PostService) List(ctx context.Context) ([]dom.Post, error) {
	if s.cache == nil {
		return s.repo.List(ctx)
	}
	list, gen, err := s.cache.GetList(ctx)
	if err != nil {
		s.logger.Warn("Post service: cache read failed", "error", err.Error())
		return s.repo.List(ctx)
	}
	if list != nil {
		return list, nil
	}

	// Callers only share a load within one generation.
	v, err, _ := s.sf.Do("list:"+strconv.FormatInt(gen, 10), func() (interface{}, error) {
		list, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetList(ctx, gen, list); err != nil {
			s.logger.Warn("Post service: cache write failed", "error", err.Error())
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Post), nil
}

// Get loads a post from the store. With checkAuthor set, only the post's
// author may see it; everyone else gets dom.ErrForbidden.
func (s *PostService) Get(ctx context.Context, who dom.Identity, id int64, checkAuthor bool) (dom.Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Warn("Post service: post lookup failed",
			"post_id", id,
			"error", err.Error())
		return dom.Post{}, err
	}
	if checkAuthor && !who.Owns(p) {
		s.logger.Warn("Post service: user tried to access a post they don't own",
			"user_id", who.UserID(),
			"post_id", id)
		return dom.Post{}, dom.ErrForbidden
	}
	return p, nil
}

func (s *PostService) Create(ctx context.Context, who dom.Identity, title, body string) (dom.Post, error) {
	if !who.IsAuthenticated() {
		return dom.Post{}, dom.ErrUnauthenticated
	}
	title = strings.TrimSpace(title)
	if title == "" {
		s.logger.Info("Post service: post creation rejected, title is required",
			"user_id", who.UserID())
		return dom.Post{}, dom.NewValidationError("title", "Title is required.")
	}

	p, err := s.repo.Create(ctx, who.UserID(), title, body)
	if err != nil {
		s.logger.Error("Post service: failed to create post",
			"user_id", who.UserID(),
			"error", err.Error())
		return dom.Post{}, err
	}
	s.invalidateCache(ctx)

	s.logger.Info("Post service: post created",
		"user_id", who.UserID(),
		"post_id", p.ID,
		"title", p.Title)
	return p, nil
}

// Update overwrites title and body of a post owned by who.
func (s *PostService) Update(ctx context.Context, who dom.Identity, id int64, title, body string) (dom.Post, error) {
	if !who.IsAuthenticated() {
		return dom.Post{}, dom.ErrUnauthenticated
	}
	if _, err := s.Get(ctx, who, id, true); err != nil {
		return dom.Post{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		s.logger.Info("Post service: post update rejected, title is required",
			"user_id", who.UserID(),
			"post_id", id)
		return dom.Post{}, dom.NewValidationError("title", "Title is required.")
	}

	p, err := s.repo.Update(ctx, id, title, body)
	if err != nil {
		s.logger.Error("Post service: failed to update post",
			"user_id", who.UserID(),
			"post_id", id,
			"error", err.Error())
		return dom.Post{}, err
	}
	s.invalidateCache(ctx)

	s.logger.Info("Post service: post updated",
		"user_id", who.UserID(),
		"post_id", id,
		"title", p.Title)
	return p, nil
}

// Delete permanently removes a post owned by who.
func (s *PostService) Delete(ctx context.Context, who dom.Identity, id int64) error {
	if !who.IsAuthenticated() {
		return dom.ErrUnauthenticated
	}
	if _, err := s.Get(ctx, who, id, true); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Post service: failed to delete post",
			"user_id", who.UserID(),
			"post_id", id,
			"error", err.Error())
		return err
	}
	s.invalidateCache(ctx)

	s.logger.Info("Post service: post deleted",
		"user_id", who.UserID(),
		"post_id", id)
	return nil
}

func (s *PostService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("Post service: cache invalidation failed", "error", err.Error())
	}
}
