package music

import "floppotron-api/internal/catalog"

// ---------- requests

// ListBody is the optional JSON body of a list request carrying the order
// and filter specs, matching the query contract of the catalog.
type ListBody struct {
	Order  catalog.OrderSpec `json:"order"`
	Filter *catalog.Filter   `json:"filter"`
}

type CreateArtistRequest struct {
	Name     string  `json:"name" binding:"required"`
	Country  *string `json:"country"`
	BornYear *int    `json:"born_year"`
}

type CreateSongRequest struct {
	Name        string   `json:"name" binding:"required"`
	ArtistID    *uint    `json:"artist_id"`
	CreatedYear *int     `json:"created_year"`
	FormatType  *string  `json:"format_type"`
	Duration    *float64 `json:"duration"`
	Path        string   `json:"path" binding:"required"`
}

// UpdateRequest is a free-form partial change set; the catalog rejects
// immutable and undeclared fields.
type UpdateRequest map[string]interface{}
