package store

import (
	"context"
	"fmt"

	"github.com/localnerve/supportdash/internal/models"
	"github.com/localnerve/supportdash/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// LoadFromDB reads every user, app and log once and returns them as a snapshot.
// The database is not consulted again afterwards.
func LoadFromDB(ctx context.Context, db *gorm.DB) (*Snapshot, error) {
	session := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).WithContext(ctx)

	var users []models.User
	if err := session.Clauses(hints.CommentBefore("select", "supportdash:snapshot:users")).
		Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("%w: users: %v", types.ErrDataLoad, err)
	}

	var apps []models.App
	if err := session.Clauses(hints.CommentBefore("select", "supportdash:snapshot:apps")).
		Order("id").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("%w: apps: %v", types.ErrDataLoad, err)
	}

	var logs []models.AppAILog
	if err := session.Clauses(hints.CommentBefore("select", "supportdash:snapshot:logs")).
		Order("id").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("%w: logs: %v", types.ErrDataLoad, err)
	}

	return New(SourceDatabase, users, apps, logs), nil
}
