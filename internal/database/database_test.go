package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLiteDatabase(t *testing.T) Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return &database{db: db}
}

func TestPingReportsConnectionState(t *testing.T) {
	conn := newSQLiteDatabase(t)

	assert.NoError(t, conn.Ping())

	require.NoError(t, conn.Close())
	assert.Error(t, conn.Ping(), "Ping must fail once the pool is closed")
}

func TestMigrateCreatesAllTables(t *testing.T) {
	conn := newSQLiteDatabase(t)
	defer conn.Close()

	require.NoError(t, Migrate(conn.DB()))

	migrator := conn.DB().Migrator()
	for _, table := range []string{"organizations", "employees", "clients", "notes", "otps"} {
		assert.True(t, migrator.HasTable(table), table)
	}
}
