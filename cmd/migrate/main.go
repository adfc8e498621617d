// Command migrate runs schema operations for the backend. Connect skips
// AutoMigrate in production; this tool applies the schema there explicitly.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"hoopline/internal/config"
	"hoopline/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate <up|status>")
}

func run() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(flag.Arg(0))) {
	case "up":
		if err := db.AutoMigrate(database.Models()...); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}
		log.Println("schema applied")
	case "status":
		migrator := db.Migrator()
		for _, model := range database.Models() {
			stmt := db.Model(model).Statement
			if err := stmt.Parse(model); err != nil {
				return fmt.Errorf("parse model: %w", err)
			}
			table := stmt.Schema.Table
			log.Printf("table %-26s exists=%t", table, migrator.HasTable(model))
		}
	default:
		return usage()
	}

	return nil
}
