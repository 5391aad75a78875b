package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	"github.com/thefueley/sonic-poc/internal/auth"
	"github.com/thefueley/sonic-poc/internal/config"
	"github.com/thefueley/sonic-poc/internal/handlers"
	"github.com/thefueley/sonic-poc/internal/logger"
	"github.com/thefueley/sonic-poc/internal/service"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, log *logger.Logger, deps Deps) {
	sessions := auth.NewSessions(
		cfg.Session.Secret,
		cfg.Session.TTL.Duration(),
		cfg.Session.CookieName,
		cfg.Session.Secure,
	)
	userSvc := service.NewUserService(deps.Users, log)
	postSvc := service.NewPostService(deps.Posts, deps.Cache, log)

	r.GET("/hello", helloHandler())
	r.GET("/health", healthHandler(cfg, deps.Ping))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	site := r.Group("", auth.LoadIdentity(sessions, userSvc, log))

	authHandler := handlers.NewAuthHandler(sessions, userSvc, log)
	registerAuthRoutes(site.Group("/auth"), authHandler)

	blogHandler := handlers.NewBlogHandler(postSvc, log)
	site.GET("/", blogHandler.Index)
	registerBlogRoutes(site.Group("/blog", auth.RequireLogin()), blogHandler)
}

func helloHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "Hello, World!")
	}
}

func healthHandler(cfg config.Config, ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				_ = c.Error(err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "env": cfg.App.Env, "error": "database unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(g *gin.RouterGroup, h *handlers.AuthHandler) {
	g.GET("/register", h.RegisterForm)
	g.POST("/register", h.Register)
	g.GET("/login", h.LoginForm)
	g.POST("/login", h.Login)
	g.GET("/logout", h.Logout)
}

func registerBlogRoutes(g *gin.RouterGroup, h *handlers.BlogHandler) {
	g.GET("/create", h.CreateForm)
	g.POST("/create", h.Create)
	g.GET("/:id/update", h.UpdateForm)
	g.POST("/:id/update", h.Update)
	g.POST("/:id/delete", h.Delete)
}
