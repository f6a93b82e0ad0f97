// Command seed bootstraps the first superuser account. It connects with the
// same configuration as the server, applies migrations, and creates an
// active superuser, prompting for the password when it is not passed as a
// flag.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/term"

	"topicboard/internal/common"
	"topicboard/internal/flagx"
	"topicboard/internal/server/config"
	"topicboard/internal/server/repositories/repomanager"
	"topicboard/internal/server/services"
)

func main() {
	args := flagx.FilterArgs(os.Args[1:], []string{"-email", "-password"})

	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	email := fs.String("email", "", "superuser email (required)")
	password := fs.String("password", "", "superuser password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parsing flags: %v", err)
	}

	if *email == "" {
		fs.Usage()
		os.Exit(2)
	}

	pass := *password
	if pass == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			log.Fatalf("reading password: %v", err)
		}
		pass = string(raw)
	}
	if pass == "" {
		log.Fatal("password must not be empty")
	}

	ctx := context.Background()
	cfg := config.LoadConfig()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer db.Close()

	rm, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	svc := services.NewUserService(db, rm, cfg)
	user, err := svc.Create(ctx, services.CreateUserInput{
		Email:       *email,
		Password:    pass,
		IsActive:    true,
		IsSuperuser: true,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			log.Fatalf("account %s already exists", *email)
		}
		log.Fatalf("creating superuser: %v", err)
	}

	fmt.Printf("superuser %s created (id=%d)\n", user.Email, user.ID)
}
