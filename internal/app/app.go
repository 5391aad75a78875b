package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/thefueley/sonic-poc/internal/cache"
	"github.com/thefueley/sonic-poc/internal/config"
	"github.com/thefueley/sonic-poc/internal/logger"
	"github.com/thefueley/sonic-poc/internal/middleware"
	"github.com/thefueley/sonic-poc/internal/repo"
	"github.com/thefueley/sonic-poc/internal/service"
	"github.com/thefueley/sonic-poc/internal/web"
	"github.com/thefueley/sonic-poc/migrations"
)

type App struct {
	cfg    config.Config
	logger *logger.Logger
	db     *pgxpool.Pool
	redis  *redis.Client
	router *gin.Engine
}

// Deps are the storage backends the router is built on.
type Deps struct {
	Users repo.UserRepo
	Posts repo.PostRepo
	// Cache may be nil, then the post list is always read from Posts.
	Cache service.PostListCache
	// Ping reports database health for /health. Nil means always healthy.
	Ping func(ctx context.Context) error
}

func New(cfg config.Config, log *logger.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: log}

	db, err := newPostgres(cfg.PG)
	if err != nil {
		return nil, err
	}
	a.db = db
	log.Info("App: connected to Postgres", "max_conns", cfg.PG.MaxConns)

	if err := migrations.Apply(cfg.PG.DSN); err != nil {
		a.db.Close()
		return nil, err
	}
	log.Info("App: migrations applied")

	deps := Deps{
		Users: repo.NewPGUserRepo(db),
		Posts: repo.NewPGPostRepo(db),
		Ping:  db.Ping,
	}

	if cfg.Redis.Enabled() {
		rdb, err := newRedis(cfg.Redis)
		if err != nil {
			a.db.Close()
			return nil, err
		}
		a.redis = rdb
		deps.Cache = cache.NewPostCache(rdb, cfg.Redis.DefaultTTL.Duration())
		log.Info("App: post list cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.DefaultTTL.Duration().String())
	} else {
		log.Info("App: Redis not configured, post list cache disabled")
	}

	router, err := NewRouter(cfg, log, deps)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.router = router
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

// Close releases the Redis client and the Postgres pool.
func (a *App) Close() error {
	var err error
	if a.redis != nil {
		if cerr := a.redis.Close(); cerr != nil {
			err = fmt.Errorf("redis close: %w", cerr)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	return err
}

func newPostgres(cfg config.PGConfig) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("pg parse config: %w", err)
	}
	pcfg.MaxConns = cfg.MaxConns
	pcfg.MinConns = min(2, cfg.MaxConns)
	pcfg.MaxConnIdleTime = 5 * time.Minute
	pcfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), pcfg)
	if err != nil {
		return nil, fmt.Errorf("pg connect: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg ping: %w", err)
	}

	return pool, nil
}

func newRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

// NewRouter builds the engine with middleware, templates and all routes.
func NewRouter(cfg config.Config, log *logger.Logger, deps Deps) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logging(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Cookie", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", middleware.RequestIDHeader},
		AllowCredentials: !allowsAnyOrigin(cfg.HTTP.AllowOrigins),
		MaxAge:           12 * time.Hour,
	}))
	r.SetHTMLTemplate(tmpl)

	Setup(r, cfg, log, deps)
	return r, nil
}

// cors refuses credentials together with the "*" origin.
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
