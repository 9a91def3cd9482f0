package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDB_MigratesAllTables(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	for _, table := range []string{"users", "audit_logs", "charts", "customers", "accounts", "transactions", "loans"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestHealthCheck(t *testing.T) {
	db := SetupTestDB(t)

	require.NoError(t, db.HealthCheck(context.Background()))

	require.NoError(t, db.Close())
	assert.Error(t, db.HealthCheck(context.Background()))
}

func TestCreateIndexes_IsIdempotent(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	require.NoError(t, db.CreateIndexes())
	require.NoError(t, db.CreateIndexes())

	assert.True(t, db.Migrator().HasIndex("transactions", "idx_transactions_date_channel"))
}

func TestCleanupTestDB(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	CreateTestUser(t, db, "someone@gmail.com", "Pending")
	CreateTestCustomer(t, db, "Canada", "North")

	CleanupTestDB(t, db)

	var count int64
	require.NoError(t, db.Table("users").Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Table("customers").Count(&count).Error)
	assert.Zero(t, count)
}
