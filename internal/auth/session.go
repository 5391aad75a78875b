package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultCookieName = "session"
	defaultSessionTTL = 24 * time.Hour
)

var ErrInvalidSession = errors.New("invalid session")

// sessionClaims is the whole session payload: the user id plus timestamps.
type sessionClaims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// Sessions issues and reads the signed session cookie. Nothing is stored
// server side; the cookie carries only the user id.
type Sessions struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	secure     bool
	now        func() time.Time
}

// NewSessions returns a cookie session codec signing with HMAC-SHA256.
func NewSessions(secret string, ttl time.Duration, cookieName string, secure bool) *Sessions {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	if cookieName == "" {
		cookieName = defaultCookieName
	}
	return &Sessions{
		secret:     []byte(secret),
		ttl:        ttl,
		cookieName: cookieName,
		secure:     secure,
		now:        time.Now,
	}
}

// Issue signs a token for userID.
func (s *Sessions) Issue(userID int64) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

// Parse verifies a token and returns the user id it carries.
func (s *Sessions) Parse(raw string) (int64, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if claims.UserID <= 0 {
		return 0, ErrInvalidSession
	}
	return claims.UserID, nil
}

// Start replaces whatever session the client held with one for userID.
func (s *Sessions) Start(c *gin.Context, userID int64) error {
	token, err := s.Issue(userID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, token, int(s.ttl.Seconds()), "/", "", s.secure, true)
	return nil
}

// Clear expires the session cookie. Safe to call without a session.
func (s *Sessions) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, "", -1, "/", "", s.secure, true)
}

// UserID returns the user id from the request cookie. ok is false when the
// cookie is missing; err is set when it is present but not valid.
func (s *Sessions) UserID(c *gin.Context) (id int64, ok bool, err error) {
	raw, cerr := c.Cookie(s.cookieName)
	if cerr != nil || raw == "" {
		return 0, false, nil
	}
	id, err = s.Parse(raw)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}
