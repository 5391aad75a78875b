package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/thefueley/sonic-poc/internal/domain"
	"github.com/thefueley/sonic-poc/internal/testutil"
	"github.com/thefueley/sonic-poc/internal/web"
)

func newTestContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tmpl, err := web.Templates()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	engine.SetHTMLTemplate(tmpl)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestFormMessage(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   string
		wantOK bool
	}{
		{name: "validation", err: dom.NewValidationError("title", "Title is required."), want: "Title is required.", wantOK: true},
		{name: "authentication", err: dom.ErrIncorrectPassword, want: "Incorrect password.", wantOK: true},
		{name: "wrapped conflict", err: fmt.Errorf("register: %w", dom.ErrConflict), want: "Registration failed.", wantOK: true},
		{name: "not found", err: dom.ErrNotFound},
		{name: "storage", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := formMessage(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, msg)
		})
	}
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantCode     int
		wantLocation string
	}{
		{name: "not found", err: dom.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "forbidden", err: fmt.Errorf("update: %w", dom.ErrForbidden), wantCode: http.StatusForbidden},
		{name: "unauthenticated", err: dom.ErrUnauthenticated, wantCode: http.StatusFound, wantLocation: "/auth/login"},
		{name: "unexpected", err: errors.New("db down"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t, "/blog/1/update")
			renderError(c, testutil.MakeNoopLogger(), tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			assert.NotContains(t, w.Body.String(), "db down")
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw    string
		want   int64
		wantOK bool
	}{
		{raw: "42", want: 42, wantOK: true},
		{raw: "0"},
		{raw: "-3"},
		{raw: "abc"},
		{raw: "99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c, w := newTestContext(t, "/blog/"+tt.raw+"/update")
			c.Params = gin.Params{{Key: "id", Value: tt.raw}}

			id, ok := parseID(c, "id")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, id)
			if !tt.wantOK {
				assert.Equal(t, http.StatusNotFound, w.Code)
			}
		})
	}
}
