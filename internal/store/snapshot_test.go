package store

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/localnerve/supportdash/internal/models"
	"github.com/localnerve/supportdash/internal/types"
)

func TestLoadEmbedded(t *testing.T) {
	snap, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, Counts{Users: 6, Apps: 14, Logs: 57}, snap.Counts())
	assert.Equal(t, SourceEmbedded, snap.Source())

	for _, l := range snap.Logs() {
		require.False(t, l.Raw.Empty(), "log %d lost its raw record", l.ID)
	}

	u, ok := snap.User(1)
	require.True(t, ok)
	assert.Equal(t, "Maya Chen", u.Name)
}

func TestLoadFixturesRejectsMalformedInput(t *testing.T) {
	_, err := LoadFixtures([]byte(`[]`), []byte(`{"Id":1}`), []byte(`[]`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrDataLoad))
}

func TestSnapshotAccessorsReturnCopies(t *testing.T) {
	snap := New(SourceEmbedded,
		[]models.User{{ID: 1, Name: "A"}},
		[]models.App{{ID: 1, UserID: 1, AppName: "one"}},
		[]models.AppAILog{{ID: 1, AppID: 1, ChatAnalysisStatus: "stuck"}},
	)

	users := snap.Users()
	users[0].Name = "changed"
	apps := snap.Apps()
	apps[0].AppName = "changed"
	logs := snap.Logs()
	logs[0].ChatAnalysisStatus = "changed"

	assert.Equal(t, "A", snap.Users()[0].Name)
	assert.Equal(t, "one", snap.Apps()[0].AppName)
	assert.Equal(t, "stuck", snap.Logs()[0].ChatAnalysisStatus)
}

func TestSnapshotFirstRecordWinsOnDuplicateID(t *testing.T) {
	snap := New(SourceEmbedded,
		[]models.User{{ID: 7, Name: "first"}, {ID: 7, Name: "second"}},
		nil, nil,
	)
	u, ok := snap.User(7)
	require.True(t, ok)
	assert.Equal(t, "first", u.Name)

	_, ok = snap.App(7)
	assert.False(t, ok)
}

func TestLoadFromDB(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.App{}, &models.AppAILog{}))

	summary := "looped on the same error"
	require.NoError(t, db.Create(&models.User{ID: 2, Name: "B", ExternalID: "usr_2"}).Error)
	require.NoError(t, db.Create(&models.User{ID: 1, Name: "A", ExternalID: "usr_1"}).Error)
	require.NoError(t, db.Create(&models.App{ID: 10, UserID: 1, AppName: "x", LastMessageAt: "2024-01-01T00:00:00Z"}).Error)
	require.NoError(t, db.Create(&models.AppAILog{
		ID: 100, AppID: 10, CreatedAt: "2024-01-01T00:00:00Z", ChatAnalysisStatus: "going_in_circles",
		SentimentScore: -0.2, FrustrationLevel: 4, Summary: &summary,
		Raw: models.NewJSON([]byte(`{"Id":100}`)),
	}).Error)

	snap, err := LoadFromDB(context.Background(), db)
	require.NoError(t, err)

	assert.Equal(t, SourceDatabase, snap.Source())
	assert.Equal(t, Counts{Users: 2, Apps: 1, Logs: 1}, snap.Counts())
	assert.Equal(t, 1, snap.Users()[0].ID)

	l := snap.Logs()[0]
	assert.Equal(t, "2024-01-01T00:00:00Z", l.CreatedAt)
	require.NotNil(t, l.Summary)
	assert.Equal(t, summary, *l.Summary)
	assert.JSONEq(t, `{"Id":100}`, string(l.Raw.JSON))
}
