package routes

import (
	musicapi "floppotron-api/internal/api/music"
	"floppotron-api/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to the Floppotron song API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/")
	api.Use(middleware.SanitizeAndCleanInputMiddleware())

	api.GET("/songs", musicapi.GetSongs)
	api.GET("/songs/:id", musicapi.GetSongByID)
	api.POST("/songs", musicapi.CreateSong)
	api.PUT("/songs/:id", musicapi.UpdateSong)
	api.DELETE("/songs/:id", musicapi.DeleteSong)

	api.GET("/artists", musicapi.GetArtists)
	api.GET("/artists/:id", musicapi.GetArtistByID)
	api.POST("/artists", musicapi.CreateArtist)
	api.PUT("/artists/:id", musicapi.UpdateArtist)
	api.DELETE("/artists/:id", musicapi.DeleteArtist)
}
