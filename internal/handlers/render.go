package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thefueley/sonic-poc/internal/auth"
	dom "github.com/thefueley/sonic-poc/internal/domain"
	"github.com/thefueley/sonic-poc/internal/dto"
	"github.com/thefueley/sonic-poc/internal/logger"
	"github.com/thefueley/sonic-poc/internal/web"
)

// render executes a page template with the current user added to data.
func render(c *gin.Context, status int, page string, data gin.H) {
	data["User"] = auth.IdentityFrom(c).User
	c.HTML(status, page, data)
}

// formMessage returns the user-facing message for errors that re-display a form.
func formMessage(err error) (string, bool) {
	var verr *dom.ValidationError
	if errors.As(err, &verr) {
		return verr.Message, true
	}
	var aerr *dom.AuthenticationError
	if errors.As(err, &aerr) {
		return aerr.Message, true
	}
	if errors.Is(err, dom.ErrConflict) {
		return "Registration failed.", true
	}
	return "", false
}

// renderError turns lookup and ownership failures into their HTTP pages.
// Anything unexpected is logged and shown as a 500.
func renderError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, dom.ErrNotFound):
		render(c, http.StatusNotFound, "error.html", gin.H{
			"Title":   "Not Found",
			"Message": "The requested post doesn't exist.",
		})
	case errors.Is(err, dom.ErrForbidden):
		render(c, http.StatusForbidden, "error.html", gin.H{
			"Title":   "Forbidden",
			"Message": "You don't have permission to change this post.",
		})
	case errors.Is(err, dom.ErrUnauthenticated):
		c.Redirect(http.StatusFound, auth.LoginPath)
	default:
		log.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err.Error())
		_ = c.Error(err)
		render(c, http.StatusInternalServerError, web.ErrorPage, gin.H(web.InternalError()))
	}
}

// renderBadRequest answers a form body that could not be decoded.
func renderBadRequest(c *gin.Context, log *logger.Logger, err error) {
	log.Warn("malformed form body",
		"path", c.Request.URL.Path,
		"error", err.Error())
	render(c, http.StatusBadRequest, "error.html", gin.H{
		"Title":   "Bad Request",
		"Message": "The submitted form could not be read.",
	})
}

// parseID reads a positive post id from the path. Anything else is a 404,
// the same as an id that matches no post.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		render(c, http.StatusNotFound, "error.html", gin.H{
			"Title":   "Not Found",
			"Message": "The requested post doesn't exist.",
		})
		return 0, false
	}
	return id, true
}

func postToView(p dom.Post) dto.PostView {
	return dto.PostView{
		ID:       p.ID,
		AuthorID: p.AuthorID,
		Username: p.Username,
		Title:    p.Title,
		Body:     p.Body,
		Created:  p.Created,
	}
}

func postsToViews(list []dom.Post) []dto.PostView {
	out := make([]dto.PostView, len(list))
	for i := range list {
		out[i] = postToView(list[i])
	}
	return out
}
