package catalog

import (
	"errors"

	"floppotron-api/internal/domain/music"

	"gorm.io/gorm"
)

func ListSongs(db *gorm.DB, params ListParams) ([]music.Song, error) {
	q, err := buildListQuery(db.Model(&music.Song{}), music.SongFields, params)
	if err != nil {
		return nil, err
	}

	var songs []music.Song
	if err := q.Find(&songs).Error; err != nil {
		return nil, &StoreError{Op: "list songs", Err: err}
	}
	if len(songs) == 0 {
		return nil, ErrNotFound
	}
	return songs, nil
}

func GetSong(db *gorm.DB, id uint) (*music.Song, error) {
	var song music.Song
	if err := db.First(&song, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StoreError{Op: "get song", Err: err}
	}
	return &song, nil
}

// CreateSong persists a song. When artist_id is set, the referenced artist
// must exist; the check and the insert share a transaction so the artist
// cannot be deleted in between.
func CreateSong(db *gorm.DB, song *music.Song) (*music.Song, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		if song.ArtistID != nil {
			var artist music.Artist
			if err := tx.First(&artist, *song.ArtistID).Error; err != nil {
				return err
			}
		}
		return tx.Create(song).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StoreError{Op: "create song", Err: err}
	}
	return song, nil
}

// UpdateSong only ever changes name; every other song field is locked
// after creation.
func UpdateSong(db *gorm.DB, id uint, changes map[string]interface{}) (*music.Song, error) {
	cols, err := validateChanges(music.SongFields, changes)
	if err != nil {
		return nil, err
	}

	var song music.Song
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&song, id).Error; err != nil {
			return err
		}
		if len(cols) == 0 {
			return nil
		}
		if err := tx.Model(&song).Updates(cols).Error; err != nil {
			return err
		}
		return tx.First(&song, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StoreError{Op: "update song", Err: err}
	}
	return &song, nil
}

func DeleteSong(db *gorm.DB, id uint) (uint, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var song music.Song
		if err := tx.First(&song, id).Error; err != nil {
			return err
		}
		return tx.Delete(&song).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, &StoreError{Op: "delete song", Err: err}
	}
	return id, nil
}
