package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	dom "github.com/thefueley/sonic-poc/internal/domain"
	"github.com/thefueley/sonic-poc/internal/logger"
	"github.com/thefueley/sonic-poc/internal/repo"
	"github.com/thefueley/sonic-poc/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration, credential checks and user lookup.
type UserService struct {
	repo   repo.UserRepo
	logger *logger.Logger
	cost   int
}

// NewUserService returns a new UserService hashing with bcrypt.DefaultCost.
func NewUserService(repo repo.UserRepo, logger *logger.Logger) *UserService {
	return &UserService{repo: repo, logger: logger, cost: bcrypt.DefaultCost}
}

// WithHashCost overrides the bcrypt cost. Used by tests.
func (s *UserService) WithHashCost(cost int) *UserService {
	s.cost = cost
	return s
}

// bcrypt rejects longer inputs.
const maxPasswordBytes = 72

// Register creates a new user with a hashed password. It never pre-checks
// uniqueness: a collision is reported by the insert as dom.ErrConflict.
func (s *UserService) Register(ctx context.Context, username, email, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	var verr error
	switch {
	case username == "":
		verr = dom.NewValidationError("username", "Username is required.")
	case email == "":
		verr = dom.NewValidationError("email", "Email is required.")
	case password == "":
		verr = dom.NewValidationError("password", "Password is required.")
	case len(password) > maxPasswordBytes:
		verr = dom.NewValidationError("password", "Password is too long.")
	}
	if verr != nil {
		s.logger.Info("User service: registration rejected",
			"username", username,
			"reason", verr.Error())
		return dom.User{}, verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return dom.User{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.repo.Create(ctx, username, email, string(hash))
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			s.logger.Warn("User service: registration failed, username or email taken",
				"username", username)
			return dom.User{}, dom.ErrConflict
		}
		s.logger.Error("User service: failed to create user",
			"username", username,
			"error", err.Error())
		return dom.User{}, err
	}

	s.logger.Info("User service: user registered",
		"username", u.Username,
		"user_id", u.ID)
	return u, nil
}

// ValidateCredentials checks username and password; returns user if valid.
func (s *UserService) ValidateCredentials(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, dom.ErrNotFound) {
			s.logger.Warn("User service: login failed, unknown username",
				"username", username)
			return dom.User{}, dom.ErrIncorrectUsername
		}
		s.logger.Error("User service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("User service: login failed, wrong password",
			"username", username)
		return dom.User{}, dom.ErrIncorrectPassword
	}

	s.logger.Info("User service: credentials accepted",
		"username", u.Username,
		"user_id", u.ID)
	return u, nil
}

// GetByID returns the user, dom.ErrNotFound if the id is unknown.
func (s *UserService) GetByID(ctx context.Context, id int64) (dom.User, error) {
	return s.repo.GetByID(ctx, id)
}
