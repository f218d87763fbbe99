// Package store holds the immutable record snapshot every query reads from.
package store

import (
	"time"

	"github.com/localnerve/supportdash/internal/models"
)

// Source names where a snapshot came from.
const (
	SourceEmbedded = "embedded"
	SourceDatabase = "database"
)

// Snapshot is a read-only set of users, apps and logs. Accessors hand out copies, so
// callers may reorder or modify what they get back without affecting other readers.
type Snapshot struct {
	users []models.User
	apps  []models.App
	logs  []models.AppAILog

	usersByID map[int]int
	appsByID  map[int]int

	source   string
	loadedAt time.Time
}

// Counts is the number of records of each kind.
type Counts struct {
	Users int `json:"users"`
	Apps  int `json:"apps"`
	Logs  int `json:"logs"`
}

// New builds a snapshot from the given records. When ids repeat, lookups resolve to
// the first record with that id.
func New(source string, users []models.User, apps []models.App, logs []models.AppAILog) *Snapshot {
	s := &Snapshot{
		users:     append([]models.User(nil), users...),
		apps:      append([]models.App(nil), apps...),
		logs:      append([]models.AppAILog(nil), logs...),
		usersByID: make(map[int]int, len(users)),
		appsByID:  make(map[int]int, len(apps)),
		source:    source,
		loadedAt:  time.Now(),
	}
	for i, u := range s.users {
		if _, dup := s.usersByID[u.ID]; !dup {
			s.usersByID[u.ID] = i
		}
	}
	for i, a := range s.apps {
		if _, dup := s.appsByID[a.ID]; !dup {
			s.appsByID[a.ID] = i
		}
	}
	return s
}

// Users returns every user in load order.
func (s *Snapshot) Users() []models.User {
	return append([]models.User(nil), s.users...)
}

// Apps returns every app in load order.
func (s *Snapshot) Apps() []models.App {
	return append([]models.App(nil), s.apps...)
}

// Logs returns every log in load order.
func (s *Snapshot) Logs() []models.AppAILog {
	return append([]models.AppAILog(nil), s.logs...)
}

// User looks a user up by id.
func (s *Snapshot) User(id int) (models.User, bool) {
	i, ok := s.usersByID[id]
	if !ok {
		return models.User{}, false
	}
	return s.users[i], true
}

// App looks an app up by id.
func (s *Snapshot) App(id int) (models.App, bool) {
	i, ok := s.appsByID[id]
	if !ok {
		return models.App{}, false
	}
	return s.apps[i], true
}

// Counts reports the snapshot size.
func (s *Snapshot) Counts() Counts {
	return Counts{Users: len(s.users), Apps: len(s.apps), Logs: len(s.logs)}
}

// Source is SourceEmbedded or SourceDatabase.
func (s *Snapshot) Source() string {
	return s.source
}

// LoadedAt is when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}
