package catalog

import (
	"testing"

	"floppotron-api/internal/domain/music"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory store
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&music.Artist{}, &music.Song{}))
	return db
}

func ptr[T any](v T) *T { return &v }

func seedArtist(t *testing.T, db *gorm.DB, name string, country string, bornYear int) music.Artist {
	t.Helper()
	artist := music.Artist{Name: name, Country: ptr(country), BornYear: ptr(bornYear)}
	require.NoError(t, db.Create(&artist).Error)
	return artist
}

func seedSong(t *testing.T, db *gorm.DB, name string, artistID *uint) music.Song {
	t.Helper()
	song := music.Song{Name: name, ArtistID: artistID, Path: "/media/" + name + ".mid"}
	require.NoError(t, db.Create(&song).Error)
	return song
}
