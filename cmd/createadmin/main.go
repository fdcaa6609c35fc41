// Command createadmin provisions an admin account out of band. Admin accounts
// are never bootstrapped over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"aviation-institute-api/internal/auth"
	"aviation-institute-api/internal/config"
	"aviation-institute-api/internal/model"
	"aviation-institute-api/internal/store"
)

func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password (min 8 chars)")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("usage: createadmin -username <name> -password <password>")
	}
	if len(*password) < 8 {
		log.Fatal("password must be at least 8 characters")
	}

	_ = godotenv.Load()
	cfg := config.Load()

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("hash: %v", err)
	}

	st := store.New(pool)
	admin := &model.Admin{
		ID:           uuid.New().String(),
		Username:     *username,
		PasswordHash: hash,
	}
	if err := st.CreateAdmin(context.Background(), admin); err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			log.Fatalf("admin %q already exists", *username)
		}
		log.Fatalf("create admin: %v", err)
	}
	log.Printf("admin %q created", *username)
}
