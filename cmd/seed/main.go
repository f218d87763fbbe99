package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/localnerve/supportdash/internal/config"
	"github.com/localnerve/supportdash/internal/database"
	"github.com/localnerve/supportdash/internal/logger"
	"github.com/localnerve/supportdash/internal/store"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Create the supportdash tables and import the embedded fixtures into the database
named by the DB_* environment variables. Existing rows with the same ids are overwritten.

Usage:

seed [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  seed -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.DBDatabase == "" {
		log.Fatalf("DB_DATABASE is required")
	}

	zlog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to database", "error", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		zlog.Fatal("failed to run migrations", "error", err)
	}

	fixtures, err := store.LoadEmbedded()
	if err != nil {
		zlog.Fatal("failed to load fixtures", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	counts, err := database.Seed(ctx, db, fixtures)
	if err != nil {
		zlog.Fatal("seeding failed", "error", err)
	}
	zlog.Info("seeded database", "type", cfg.DBType, "database", cfg.DBDatabase,
		"users", counts.Users, "apps", counts.Apps, "logs", counts.Logs)
}
