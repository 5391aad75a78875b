package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thefueley/sonic-poc/internal/auth"
	"github.com/thefueley/sonic-poc/internal/dto"
	"github.com/thefueley/sonic-poc/internal/logger"
	"github.com/thefueley/sonic-poc/internal/service"
)

type BlogHandler struct {
	svc    *service.PostService
	logger *logger.Logger
}

func NewBlogHandler(svc *service.PostService, logger *logger.Logger) *BlogHandler {
	return &BlogHandler{svc: svc, logger: logger}
}

// Index godoc
// @Summary      List all posts, most recent first
// @Tags         blog
// @Produce      html
// @Success      200
// @Router       / [get]
func (h *BlogHandler) Index(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	h.logger.Debug("fetched all posts for the index page", "count", len(list))
	render(c, http.StatusOK, "index.html", gin.H{"Title": "Posts", "Posts": postsToViews(list)})
}

// CreateForm godoc
// @Summary      New post form
// @Tags         blog
// @Produce      html
// @Security     CookieAuth
// @Success      200
// @Failure      302  "Redirect to /auth/login"
// @Router       /blog/create [get]
func (h *BlogHandler) CreateForm(c *gin.Context) {
	render(c, http.StatusOK, "create.html", gin.H{"Title": "New Post", "Form": dto.PostForm{}})
}

// Create godoc
// @Summary      Create a post
// @Tags         blog
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Security     CookieAuth
// @Param        title  formData  string  true   "Title"
// @Param        body   formData  string  false  "Body"
// @Success      302  "Redirect to /"
// @Failure      200  "Form re-rendered with a message"
// @Router       /blog/create [post]
func (h *BlogHandler) Create(c *gin.Context) {
	var form dto.PostForm
	if err := c.ShouldBind(&form); err != nil {
		renderBadRequest(c, h.logger, err)
		return
	}
	_, err := h.svc.Create(c.Request.Context(), auth.IdentityFrom(c), form.Title, form.Body)
	if err != nil {
		if msg, ok := formMessage(err); ok {
			render(c, http.StatusOK, "create.html", gin.H{"Title": "New Post", "Form": form, "Error": msg})
			return
		}
		renderError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// UpdateForm godoc
// @Summary      Edit post form
// @Tags         blog
// @Produce      html
// @Security     CookieAuth
// @Param        id   path  int  true  "Post ID"
// @Success      200
// @Failure      403
// @Failure      404
// @Router       /blog/{id}/update [get]
func (h *BlogHandler) UpdateForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), auth.IdentityFrom(c), id, true)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}
	render(c, http.StatusOK, "update.html", gin.H{
		"Title": `Edit "` + p.Title + `"`,
		"Post":  postToView(p),
		"Form":  dto.PostForm{Title: p.Title, Body: p.Body},
	})
}

// Update godoc
// @Summary      Update a post
// @Tags         blog
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Security     CookieAuth
// @Param        id     path      int     true   "Post ID"
// @Param        title  formData  string  true   "Title"
// @Param        body   formData  string  false  "Body"
// @Success      302  "Redirect to /"
// @Failure      403
// @Failure      404
// @Router       /blog/{id}/update [post]
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var form dto.PostForm
	if err := c.ShouldBind(&form); err != nil {
		renderBadRequest(c, h.logger, err)
		return
	}
	who := auth.IdentityFrom(c)
	_, err := h.svc.Update(c.Request.Context(), who, id, form.Title, form.Body)
	if err != nil {
		if msg, ok := formMessage(err); ok {
			p, gerr := h.svc.Get(c.Request.Context(), who, id, true)
			if gerr != nil {
				renderError(c, h.logger, gerr)
				return
			}
			render(c, http.StatusOK, "update.html", gin.H{
				"Title": `Edit "` + p.Title + `"`,
				"Post":  postToView(p),
				"Form":  form,
				"Error": msg,
			})
			return
		}
		renderError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Delete godoc
// @Summary      Delete a post
// @Tags         blog
// @Security     CookieAuth
// @Param        id   path  int  true  "Post ID"
// @Success      302  "Redirect to /"
// @Failure      403
// @Failure      404
// @Router       /blog/{id}/delete [post]
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), auth.IdentityFrom(c), id); err != nil {
		renderError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
