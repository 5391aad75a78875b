// One-off: go run ./cmd/adduser <username> <email> [password]
//
// Seeds an account through the same registration path the site uses.
// The password defaults to "admin".
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/thefueley/sonic-poc/internal/config"
	dom "github.com/thefueley/sonic-poc/internal/domain"
	"github.com/thefueley/sonic-poc/internal/logger"
	"github.com/thefueley/sonic-poc/internal/repo"
	"github.com/thefueley/sonic-poc/internal/service"
	"github.com/thefueley/sonic-poc/migrations"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: adduser <username> <email> [password]")
		os.Exit(2)
	}
	username, email := os.Args[1], os.Args[2]
	password := "admin"
	if len(os.Args) > 3 {
		password = os.Args[3]
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		logger.New(0).Fatal("config", "error", err.Error())
	}
	log := logger.New(cfg.App.LogLevel)

	if err := migrations.Apply(cfg.PG.DSN); err != nil {
		log.Fatal("migrate", "error", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PG.DSN)
	if err != nil {
		log.Fatal("pg connect", "error", err.Error())
	}
	defer pool.Close()

	svc := service.NewUserService(repo.NewPGUserRepo(pool), log)
	u, err := svc.Register(ctx, username, email, password)
	if err != nil {
		var verr *dom.ValidationError
		switch {
		case errors.As(err, &verr):
			fmt.Fprintln(os.Stderr, verr.Message)
		case errors.Is(err, dom.ErrConflict):
			fmt.Fprintln(os.Stderr, "username or email already taken")
		default:
			fmt.Fprintln(os.Stderr, err)
		}
		pool.Close()
		os.Exit(1)
	}
	fmt.Printf("created user %q with id %d\n", u.Username, u.ID)
}
