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
// GET /artists
// ------------------------------
func GetArtists(c *gin.Context) {
	session := uuid.New()

	params, ok := listParams(c)
	if !ok {
		return
	}

	artists, err := catalog.ListArtists(database.DB, params)
	if err != nil {
		respondError(c, err, "No artists found")
		return
	}

	next := fmt.Sprintf("/artists?limit=%d&offset=%d", params.Limit, params.Offset+1)
	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"success": true,
		"next":    next,
		"artists": artists,
	})
}

// ------------------------------
// GET /artists/:id
// ------------------------------
func GetArtistByID(c *gin.Context) {
	session := uuid.New()

	id, ok := paramID(c)
	if !ok {
		return
	}

	artist, err := catalog.GetArtist(database.DB, id)
	if err != nil {
		respondError(c, err, "Artist not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"success": true,
		"artist":  artist,
	})
}

// ------------------------------
// POST /artists
// ------------------------------
func CreateArtist(c *gin.Context) {
	session := uuid.New()

	var req CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artist, err := catalog.CreateArtist(database.DB, &music.Artist{
		Name:     req.Name,
		Country:  req.Country,
		BornYear: req.BornYear,
	})
	if err != nil {
		respondError(c, err, "Artist not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session":        session,
		"success":        true,
		"created_artist": artist,
	})
}

// ------------------------------
// PUT /artists/:id
// ------------------------------
func UpdateArtist(c *gin.Context) {
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

	artist, err := catalog.UpdateArtist(database.DB, id, changes)
	if err != nil {
		respondError(c, err, fmt.Sprintf("Artist with ID %d not found", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":        session,
		"success":        true,
		"updated_artist": artist,
	})
}

// ------------------------------
// DELETE /artists/:id
// ------------------------------
func DeleteArtist(c *gin.Context) {
	session := uuid.New()

	id, ok := paramID(c)
	if !ok {
		return
	}

	deleted, err := catalog.DeleteArtist(database.DB, id)
	if err != nil {
		respondError(c, err, fmt.Sprintf("Artist with ID %d not found", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":        session,
		"success":        true,
		"deleted_artist": deleted,
	})
}
