package orm

import (
	"testing"

	"venue_tracker/be/biz/config"
	"venue_tracker/be/biz/model/storage"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestOpenSqliteAndMigrate(t *testing.T) {
	db, err := Open(config.DatabaseConf{Driver: "sqlite", DSN: ":memory:", MaxOpenConns: 1}, false)
	assert.NoError(t, err)
	assert.NoError(t, Migrate(db))

	assert.True(t, db.Migrator().HasTable(&storage.UserRecord{}))
	assert.True(t, db.Migrator().HasTable(&storage.VenueRecord{}))
}

func TestOpen_UniqueViolationTranslated(t *testing.T) {
	db, err := Open(config.DatabaseConf{Driver: "sqlite", DSN: ":memory:", MaxOpenConns: 1}, false)
	assert.NoError(t, err)
	assert.NoError(t, Migrate(db))

	first := &storage.UserRecord{UserId: "u1", Name: "Ann", Email: "ann@x.com", PasswordHash: "h", Role: "user"}
	assert.NoError(t, db.Create(first).Error)

	dup := &storage.UserRecord{UserId: "u2", Name: "Ann", Email: "ann@x.com", PasswordHash: "h", Role: "user"}
	assert.ErrorIs(t, db.Create(dup).Error, gorm.ErrDuplicatedKey)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(config.DatabaseConf{Driver: "oracle"}, false)
	assert.Error(t, err)
}
