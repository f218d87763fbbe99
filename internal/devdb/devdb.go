// Package devdb runs a throwaway database in a container, migrated and seeded with
// the embedded fixtures. It backs the devdb command and the container tests.
package devdb

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/localnerve/supportdash/internal/config"
	"github.com/localnerve/supportdash/internal/database"
	"github.com/localnerve/supportdash/internal/logger"
	"github.com/localnerve/supportdash/internal/store"
)

// Engine describes how to run one database image.
type Engine struct {
	DBType string
	Image  string
	Port   string
	Env    map[string]string
	// ReadyLog must appear ReadyCount times before the server accepts clients.
	ReadyLog   string
	ReadyCount int
}

const (
	databaseName = "supportdash"
	userName     = "support"
	userPassword = "support-dev-pw"
)

// Engines are the supported container databases by DB_TYPE.
var Engines = map[string]Engine{
	"mariadb": {
		DBType: "mariadb",
		Image:  "mariadb:11",
		Port:   "3306",
		Env: map[string]string{
			"MARIADB_ROOT_PASSWORD": userPassword,
			"MARIADB_DATABASE":      databaseName,
			"MARIADB_USER":          userName,
			"MARIADB_PASSWORD":      userPassword,
		},
		ReadyLog:   "ready for connections",
		ReadyCount: 2,
	},
	"postgres": {
		DBType: "postgres",
		Image:  "postgres:16-alpine",
		Port:   "5432",
		Env: map[string]string{
			"POSTGRES_DB":       databaseName,
			"POSTGRES_USER":     userName,
			"POSTGRES_PASSWORD": userPassword,
		},
		ReadyLog:   "database system is ready to accept connections",
		ReadyCount: 2,
	},
}

// Instance is a running, seeded database container.
type Instance struct {
	Container testcontainers.Container
	Config    *config.Config
	Counts    store.Counts
}

// Start runs the engine named by dbType, migrates it and seeds the fixtures.
func Start(ctx context.Context, dbType string, log *logger.Logger) (*Instance, error) {
	engine, ok := Engines[dbType]
	if !ok {
		return nil, fmt.Errorf("no container engine for DB_TYPE %q", dbType)
	}

	tcpDbPort, err := nat.NewPort("tcp", engine.Port)
	if err != nil {
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        engine.Image,
			ExposedPorts: []string{string(tcpDbPort)},
			Env:          engine.Env,
			WaitingFor: wait.ForAll(
				wait.ForListeningPort(tcpDbPort),
				wait.ForLog(engine.ReadyLog).WithOccurrence(engine.ReadyCount),
			).WithDeadline(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", engine.Image, err)
	}
	inst := &Instance{Container: container}

	host, err := container.Host(ctx)
	if err != nil {
		inst.Terminate(ctx, log)
		return nil, err
	}
	port, err := container.MappedPort(ctx, tcpDbPort)
	if err != nil {
		inst.Terminate(ctx, log)
		return nil, err
	}

	inst.Config = &config.Config{
		AppEnv:            "production",
		DataSource:        config.DataSourceDatabase,
		DBType:            engine.DBType,
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        databaseName,
		DBUser:            userName,
		DBPassword:        userPassword,
		DBConnectionLimit: 2,
	}

	if err := inst.seed(ctx, log); err != nil {
		inst.Terminate(ctx, log)
		return nil, err
	}
	return inst, nil
}

func (i *Instance) seed(ctx context.Context, log *logger.Logger) error {
	db, err := database.Connect(i.Config, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	fixtures, err := store.LoadEmbedded()
	if err != nil {
		return err
	}
	i.Counts, err = database.Seed(ctx, db, fixtures)
	return err
}

// Env is the environment a server needs to read from this instance.
func (i *Instance) Env() map[string]string {
	c := i.Config
	return map[string]string{
		"DATA_SOURCE": c.DataSource,
		"DB_TYPE":     c.DBType,
		"DB_HOST":     c.DBHost,
		"DB_PORT":     c.DBPort,
		"DB_DATABASE": c.DBDatabase,
		"DB_USER":     c.DBUser,
		"DB_PASSWORD": c.DBPassword,
	}
}

// Terminate stops the container, logging rather than returning failures.
func (i *Instance) Terminate(ctx context.Context, log *logger.Logger) {
	if i == nil || i.Container == nil {
		return
	}
	if err := i.Container.Terminate(ctx); err != nil {
		log.Warn("failed to terminate database container", "error", err)
	}
}
