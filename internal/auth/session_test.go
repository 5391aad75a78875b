package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_IssueParse(t *testing.T) {
	s := NewSessions("secret", time.Hour, "", false)

	token, err := s.Issue(42)
	require.NoError(t, err)

	id, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestSessions_ParseRejects(t *testing.T) {
	s := NewSessions("secret", time.Hour, "", false)
	other := NewSessions("other-secret", time.Hour, "", false)

	forged, err := other.Issue(42)
	require.NoError(t, err)

	expired := NewSessions("secret", time.Hour, "", false)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, err := expired.Issue(42)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, sessionClaims{UserID: 42})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{UserID: 42})
	noExpiryToken, err := noExpiry.SignedString([]byte("secret"))
	require.NoError(t, err)

	zeroID, err := s.Issue(0)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong key", token: forged},
		{name: "expired", token: stale},
		{name: "alg none", token: unsigned},
		{name: "no expiry", token: noExpiryToken},
		{name: "zero user id", token: zeroID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Parse(tt.token)
			assert.ErrorIs(t, err, ErrInvalidSession)
		})
	}
}

func TestSessions_StartAndClearCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := NewSessions("secret", time.Hour, "sid", true)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, s.Start(c, 7))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	id, err := s.Parse(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	s.Clear(c)

	cookies = w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestSessions_UserIDFromRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := NewSessions("secret", time.Hour, "", false)
	token, err := s.Issue(9)
	require.NoError(t, err)

	newCtx := func(cookie *http.Cookie) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if cookie != nil {
			c.Request.AddCookie(cookie)
		}
		return c
	}

	id, ok, err := s.UserID(newCtx(nil))
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, id)

	id, ok, err = s.UserID(newCtx(&http.Cookie{Name: "session", Value: token}))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(9), id)

	_, ok, err = s.UserID(newCtx(&http.Cookie{Name: "session", Value: "tampered"}))
	assert.ErrorIs(t, err, ErrInvalidSession)
	assert.False(t, ok)
}
