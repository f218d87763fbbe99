// seed.go
//
// Support analytics data service for app chat analysis logs
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of supportdash.
// supportdash is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// supportdash is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with supportdash.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package database

import (
	"context"
	"fmt"

	"github.com/localnerve/supportdash/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seedBatchSize = 100

// Seed writes every record of snap into db in one transaction. Rows that already
// exist are overwritten, so seeding twice leaves the same data.
func Seed(ctx context.Context, db *gorm.DB, snap *store.Snapshot) (store.Counts, error) {
	upsert := clause.OnConflict{UpdateAll: true}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if users := snap.Users(); len(users) > 0 {
			if err := tx.Clauses(upsert).CreateInBatches(users, seedBatchSize).Error; err != nil {
				return fmt.Errorf("seeding users: %w", err)
			}
		}
		if apps := snap.Apps(); len(apps) > 0 {
			if err := tx.Clauses(upsert).CreateInBatches(apps, seedBatchSize).Error; err != nil {
				return fmt.Errorf("seeding apps: %w", err)
			}
		}
		if logs := snap.Logs(); len(logs) > 0 {
			if err := tx.Clauses(upsert).CreateInBatches(logs, seedBatchSize).Error; err != nil {
				return fmt.Errorf("seeding logs: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return store.Counts{}, err
	}
	return snap.Counts(), nil
}
