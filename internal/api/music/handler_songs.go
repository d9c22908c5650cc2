package music

import (
	"fmt"
	"net/http"

	"floppotron-api/database"
	"floppotron-api/internal/catalog"
	"floppotron-api/internal/domain/music"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ------------------------------
// GET /songs
// ------------------------------
func GetSongs(c *gin.Context) {
	session := uuid.New()

	params, ok := listParams(c)
	if !ok {
		return
	}

	songs, err := catalog.ListSongs(database.DB, params)
	if err != nil {
		respondError(c, err, "No songs found")
		return
	}

	next := fmt.Sprintf("/songs?limit=%d&offset=%d", params.Limit, params.Offset+1)
	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"success": true,
		"next":    next,
		"songs":   songs,
	})
}

// ------------------------------
// GET /songs/:id
// ------------------------------
func GetSongByID(c *gin.Context) {
	session := uuid.New()

	id, ok := paramID(c)
	if !ok {
		return
	}

	song, err := catalog.GetSong(database.DB, id)
	if err != nil {
		respondError(c, err, "Song not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"success": true,
		"song":    song,
	})
}

// ------------------------------
// POST /songs
// ------------------------------
func CreateSong(c *gin.Context) {
	session := uuid.New()

	var req CreateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	song, err := catalog.CreateSong(database.DB, &music.Song{
		Name:        req.Name,
		ArtistID:    req.ArtistID,
		CreatedYear: req.CreatedYear,
		FormatType:  req.FormatType,
		Duration:    req.Duration,
		Path:        req.Path,
	})
	if err != nil {
		// a missing referenced artist is a 404, not a server fault
		respondError(c, err, "Referenced artist not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session":      session,
		"success":      true,
		"created_song": song,
	})
}

// ------------------------------
// PUT /songs/:id
// ------------------------------
func UpdateSong(c *gin.Context) {
	session := uuid.New()

	id, ok := paramID(c)
	if !ok {
		return
	}

	var changes UpdateRequest
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	song, err := catalog.UpdateSong(database.DB, id, changes)
	if err != nil {
		respondError(c, err, fmt.Sprintf("Song with ID %d not found", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":      session,
		"success":      true,
		"updated_song": song,
	})
}

// ------------------------------
// DELETE /songs/:id
// ------------------------------
func DeleteSong(c *gin.Context) {
	session := uuid.New()

	id, ok := paramID(c)
	if !ok {
		return
	}

	deleted, err := catalog.DeleteSong(database.DB, id)
	if err != nil {
		respondError(c, err, fmt.Sprintf("Song with ID %d not found", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":      session,
		"success":      true,
		"deleted_song": deleted,
	})
}
