package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/internal/model"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.ErrorContains(t, err, "unsupported db driver")
}

func TestOpenAndMigrate_SQLite(t *testing.T) {
	gdb, err := Open(DriverSQLite, "file::memory:")
	require.NoError(t, err)

	require.NoError(t, Migrate(gdb, false))
	assert.True(t, gdb.Migrator().HasTable(&model.User{}))
	assert.True(t, gdb.Migrator().HasTable(&model.Contact{}))

	require.NoError(t, gdb.Create(&model.Contact{FirstName: "A", LastName: "B", PhoneNumber: "08012345678"}).Error)
	require.NoError(t, Migrate(gdb, true))

	var count int64
	require.NoError(t, gdb.Model(&model.Contact{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.NoError(t, Ping(context.Background(), gdb))
}
