package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/localnerve/supportdash/internal/devdb"
	"github.com/localnerve/supportdash/internal/logger"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var dbType string
	flag.StringVar(&dbType, "db", "", "database engine: mariadb or postgres (default $DB_TYPE, else mariadb)")
	flag.Parse()

	usage := `
Run a seeded supportdash database in a container until interrupted.

Usage:

devdb [-h] [-f ENV_FILE_PATH] [-db mariadb|postgres]

ENV_FILE_PATH: path to the .env file

The environment for a server reading from the container is printed once it is ready.

example
  devdb -f /path/to/something/.env -db postgres
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
	if dbType == "" {
		dbType = os.Getenv("DB_TYPE")
	}
	if _, ok := devdb.Engines[dbType]; !ok {
		dbType = "mariadb"
	}

	zlog, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()
	inst, err := devdb.Start(ctx, dbType, zlog)
	if err != nil {
		zlog.Fatal("failed to start database container", "error", err)
	}
	zlog.Info("database seeded", "type", dbType, "users", inst.Counts.Users, "apps", inst.Counts.Apps, "logs", inst.Counts.Logs)

	env := inst.Env()
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s=%s\n", k, env[k])
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	sig := <-sigs
	zlog.Info("terminating database container", "signal", sig.String())
	inst.Terminate(ctx, zlog)
}
