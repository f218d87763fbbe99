package store

import (
	"encoding/json"
	"fmt"

	"github.com/localnerve/supportdash/data"
	"github.com/localnerve/supportdash/internal/models"
	"github.com/localnerve/supportdash/internal/types"
)

// LoadEmbedded builds a snapshot from the fixtures compiled into the binary.
func LoadEmbedded() (*Snapshot, error) {
	return LoadFixtures(data.UsersJSON, data.AppsJSON, data.AppAILogsJSON)
}

// LoadFixtures decodes the three fixture documents, each a JSON array of records.
// Every log keeps its original record in Raw.
func LoadFixtures(usersJSON, appsJSON, logsJSON []byte) (*Snapshot, error) {
	var users []models.User
	if err := json.Unmarshal(usersJSON, &users); err != nil {
		return nil, fmt.Errorf("%w: users fixture: %v", types.ErrDataLoad, err)
	}

	var apps []models.App
	if err := json.Unmarshal(appsJSON, &apps); err != nil {
		return nil, fmt.Errorf("%w: apps fixture: %v", types.ErrDataLoad, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(logsJSON, &records); err != nil {
		return nil, fmt.Errorf("%w: logs fixture: %v", types.ErrDataLoad, err)
	}
	logs := make([]models.AppAILog, 0, len(records))
	for i, rec := range records {
		var l models.AppAILog
		if err := json.Unmarshal(rec, &l); err != nil {
			return nil, fmt.Errorf("%w: logs fixture record %d: %v", types.ErrDataLoad, i, err)
		}
		l.Raw = models.NewJSON(rec)
		logs = append(logs, l)
	}

	return New(SourceEmbedded, users, apps, logs), nil
}
