package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	dom "github.com/thefueley/sonic-poc/internal/domain"
	"github.com/thefueley/sonic-poc/internal/logger"
	"github.com/thefueley/sonic-poc/internal/web"
)

const contextKeyIdentity = "identity"

// LoginPath is where the guard sends anonymous visitors.
const LoginPath = "/auth/login"

// UserLookup resolves a session's user id.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (dom.User, error)
}

// IdentityFrom returns the identity set by LoadIdentity, anonymous if unset.
func IdentityFrom(c *gin.Context) dom.Identity {
	v, ok := c.Get(contextKeyIdentity)
	if !ok {
		return dom.Anonymous()
	}
	id, ok := v.(dom.Identity)
	if !ok {
		return dom.Anonymous()
	}
	return id
}

// LoadIdentity resolves the session cookie to a user before every request.
// Missing, forged or expired cookies and ids of users that no longer exist
// all resolve to anonymous.
func LoadIdentity(sessions *Sessions, users UserLookup, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKeyIdentity, dom.Anonymous())

		userID, ok, err := sessions.UserID(c)
		if err != nil {
			log.Warn("Auth: rejected session cookie", "error", err.Error())
			c.Next()
			return
		}
		if !ok {
			log.Debug("Auth: no user logged in")
			c.Next()
			return
		}

		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, dom.ErrNotFound) {
				log.Warn("Auth: session refers to unknown user", "user_id", userID)
				c.Next()
				return
			}
			log.Error("Auth: failed to load session user",
				"user_id", userID,
				"error", err.Error())
			_ = c.Error(err)
			c.HTML(http.StatusInternalServerError, web.ErrorPage, web.InternalError())
			c.Abort()
			return
		}

		log.Debug("Auth: user resolved", "user_id", u.ID, "username", u.Username)
		c.Set(contextKeyIdentity, dom.Authenticated(u))
		c.Next()
	}
}

// RequireLogin redirects anonymous requests to the login page instead of
// running the handler.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IdentityFrom(c).IsAuthenticated() {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
