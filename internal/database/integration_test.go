//go:build integration

package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localnerve/supportdash/internal/database"
	"github.com/localnerve/supportdash/internal/devdb"
	"github.com/localnerve/supportdash/internal/logger"
	"github.com/localnerve/supportdash/internal/store"
)

func TestContainerRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	for _, dbType := range []string{"mariadb", "postgres"} {
		t.Run(dbType, func(t *testing.T) {
			ctx := context.Background()
			inst, err := devdb.Start(ctx, dbType, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { inst.Terminate(ctx, logger.Nop()) })

			db, err := database.Connect(inst.Config, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = database.Close(db) })

			fixtures, err := store.LoadEmbedded()
			require.NoError(t, err)

			// a second seed over existing rows must upsert
			_, err = database.Seed(ctx, db, fixtures)
			require.NoError(t, err)

			loaded, err := store.LoadFromDB(ctx, db)
			require.NoError(t, err)
			assert.Equal(t, fixtures.Counts(), loaded.Counts())
			assert.Equal(t, fixtures.Counts(), inst.Counts)

			want, _ := fixtures.App(14)
			got, ok := loaded.App(14)
			require.True(t, ok)
			assert.Equal(t, want, got)
		})
	}
}
