package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"pharmacart-be/internal/db"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	_ = godotenv.Load()

	mode := flag.String("mode", "up", "migration mode: up, down or status")
	flag.Parse()

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("DB_URL not set in environment")
	}

	conn, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer conn.Close()

	if err := run(conn, *mode); err != nil {
		log.Fatal(err)
	}
}

func run(conn *sql.DB, mode string) error {
	goose.SetBaseFS(db.Migrations())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	switch mode {
	case "up":
		return goose.Up(conn, "migrations")
	case "down":
		return goose.Down(conn, "migrations")
	case "status":
		return goose.Status(conn, "migrations")
	default:
		return fmt.Errorf("unknown mode: %s (use 'up', 'down' or 'status')", mode)
	}
}
