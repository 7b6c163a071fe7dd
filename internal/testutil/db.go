// Package testutil holds helpers shared by package tests. It is imported from
// _test.go files only, so the SQLite driver never reaches the server binary.
package testutil

import (
	"fmt"
	"testing"

	"campusconnect/backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens an isolated in-memory SQLite database with the full schema.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), database.Config(logger.Default.LogMode(logger.Silent)))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps SQLite's shared cache free of table locks.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// Event is one publish call captured by Notifier.
type Event struct {
	Targets []string
	Name    string
	Payload interface{}
}

// Notifier records publish calls instead of delivering them.
type Notifier struct {
	Events []Event
}

func (n *Notifier) Publish(userIDs []string, event string, payload interface{}) int {
	n.Events = append(n.Events, Event{Targets: userIDs, Name: event, Payload: payload})
	return len(userIDs)
}

// Named returns the recorded events with the given name.
func (n *Notifier) Named(name string) []Event {
	var out []Event
	for _, e := range n.Events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}
