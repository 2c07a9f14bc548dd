package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	auth "github.com/goliatone/sample-auth-api"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

type envConfig struct{}

var _ auth.Config = envConfig{}

func (envConfig) GetSigningKey() string {
	return os.Getenv("JWT_SECRET")
}

func (envConfig) GetIssuer() string {
	return auth.DefaultIssuer
}

func (envConfig) GetTokenExpiration() time.Duration {
	return auth.DefaultTokenExpiration
}

func main() {
	ctx := context.Background()
	cfg := envConfig{}

	if cfg.GetSigningKey() == "" {
		log.Fatal("JWT_SECRET is required")
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "file:sample_auth.db?cache=shared"
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		log.Fatal(err)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	if _, err := db.NewCreateTable().
		Model((*auth.User)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		log.Fatal(err)
	}

	users := auth.NewUsersRepository(db)
	tokens := auth.NewTokenService(
		[]byte(cfg.GetSigningKey()),
		cfg.GetTokenExpiration(),
		cfg.GetIssuer(),
		nil,
	)

	controller := auth.NewAuthController(
		auth.WithSignupHandler(auth.NewSignupHandler(users)),
		auth.WithSigninHandler(auth.NewSigninHandler(users, tokens)),
	)

	app := fiber.New()
	auth.RegisterAuthRoutes(app, controller)

	go func() {
		if err := app.Listen(":" + listenPort()); err != nil {
			log.Fatal(err)
		}
	}()

	WaitExitSignal()

	if err := app.Shutdown(); err != nil {
		log.Println(err)
	}
}

// listenPort resolves the port, certain PaaS providers allocate one through
// PORT, otherwise HTTP_PORT or the default is used
func listenPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	if port := os.Getenv("HTTP_PORT"); port != "" {
		return port
	}
	return "3000"
}

// WaitExitSignal blocks until the process is told to stop
func WaitExitSignal() os.Signal {
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	return <-ch
}
