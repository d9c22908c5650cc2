package catalog

import (
	"errors"

	"floppotron-api/internal/domain/music"

	"gorm.io/gorm"
)

// ListArtists returns one page of artists. An empty page is ErrNotFound,
// distinct from a store failure.
func ListArtists(db *gorm.DB, params ListParams) ([]music.Artist, error) {
	q, err := buildListQuery(db.Model(&music.Artist{}), music.ArtistFields, params)
	if err != nil {
		return nil, err
	}

	var artists []music.Artist
	if err := q.Find(&artists).Error; err != nil {
		return nil, &StoreError{Op: "list artists", Err: err}
	}
	if len(artists) == 0 {
		return nil, ErrNotFound
	}
	return artists, nil
}

func GetArtist(db *gorm.DB, id uint) (*music.Artist, error) {
	var artist music.Artist
	if err := db.First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StoreError{Op: "get artist", Err: err}
	}
	return &artist, nil
}

func CreateArtist(db *gorm.DB, artist *music.Artist) (*music.Artist, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(artist).Error
	})
	if err != nil {
		return nil, &StoreError{Op: "create artist", Err: err}
	}
	return artist, nil
}

// UpdateArtist applies a partial change set to an artist. Immutable and
// undeclared fields are rejected before the store is touched.
func UpdateArtist(db *gorm.DB, id uint, changes map[string]interface{}) (*music.Artist, error) {
	cols, err := validateChanges(music.ArtistFields, changes)
	if err != nil {
		return nil, err
	}

	var artist music.Artist
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&artist, id).Error; err != nil {
			return err
		}
		if len(cols) == 0 {
			return nil
		}
		if err := tx.Model(&artist).Updates(cols).Error; err != nil {
			return err
		}
		return tx.First(&artist, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StoreError{Op: "update artist", Err: err}
	}
	return &artist, nil
}

// DeleteArtist removes an artist unless songs still reference it. The
// existence check, the reference count and the delete run in one
// transaction so a concurrent song insert cannot slip past the guard.
func DeleteArtist(db *gorm.DB, id uint) (uint, error) {
	var refused *ConstraintError
	err := db.Transaction(func(tx *gorm.DB) error {
		var artist music.Artist
		if err := tx.First(&artist, id).Error; err != nil {
			return err
		}

		var songs int64
		if err := tx.Model(&music.Song{}).Where("artist_id = ?", id).Count(&songs).Error; err != nil {
			return err
		}
		if songs > 0 {
			refused = &ConstraintError{Artist: artist.Name}
			return refused
		}

		return tx.Delete(&artist).Error
	})
	if err != nil {
		if refused != nil {
			return 0, refused
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, &StoreError{Op: "delete artist", Err: err}
	}
	return id, nil
}
