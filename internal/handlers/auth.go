package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thefueley/sonic-poc/internal/auth"
	"github.com/thefueley/sonic-poc/internal/dto"
	"github.com/thefueley/sonic-poc/internal/logger"
	"github.com/thefueley/sonic-poc/internal/service"
)

// AuthHandler handles login, register and logout.
type AuthHandler struct {
	sessions *auth.Sessions
	userSvc  *service.UserService
	logger   *logger.Logger
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(sessions *auth.Sessions, userSvc *service.UserService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, userSvc: userSvc, logger: logger}
}

// RegisterForm godoc
// @Summary      Registration form
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /auth/register [get]
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"Title": "Register", "Form": dto.RegisterForm{}})
}

// Register godoc
// @Summary      Register
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username  formData  string  true  "Username"
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      302  "Redirect to /auth/login"
// @Failure      200  "Form re-rendered with a message"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		renderBadRequest(c, h.logger, err)
		return
	}
	_, err := h.userSvc.Register(c.Request.Context(), form.Username, form.Email, form.Password)
	if err != nil {
		msg, ok := formMessage(err)
		if !ok {
			renderError(c, h.logger, err)
			return
		}
		form.Password = ""
		render(c, http.StatusOK, "register.html", gin.H{"Title": "Register", "Form": form, "Error": msg})
		return
	}
	c.Redirect(http.StatusFound, auth.LoginPath)
}

// LoginForm godoc
// @Summary      Login form
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /auth/login [get]
func (h *AuthHandler) LoginForm(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"Title": "Log In", "Form": dto.LoginForm{}})
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302  "Session cookie set, redirect to /"
// @Failure      200  "Form re-rendered with a message"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		renderBadRequest(c, h.logger, err)
		return
	}
	user, err := h.userSvc.ValidateCredentials(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		msg, ok := formMessage(err)
		if !ok {
			renderError(c, h.logger, err)
			return
		}
		form.Password = ""
		render(c, http.StatusOK, "login.html", gin.H{"Title": "Log In", "Form": form, "Error": msg})
		return
	}
	if err := h.sessions.Start(c, user.ID); err != nil {
		renderError(c, h.logger, err)
		return
	}
	h.logger.Info("user logged in", "username", user.Username, "user_id", user.ID)
	c.Redirect(http.StatusFound, "/")
}

// Logout godoc
// @Summary      Logout
// @Tags         auth
// @Success      302  "Session cleared, redirect to /"
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.Redirect(http.StatusFound, "/")
}
