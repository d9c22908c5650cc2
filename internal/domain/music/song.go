package music

type Song struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"not null;index" json:"name" binding:"required"`
	ArtistID    *uint    `gorm:"index" json:"artist_id,omitempty"`
	CreatedYear *int     `gorm:"column:created_year" json:"created_year,omitempty"`
	FormatType  *string  `gorm:"column:format_type" json:"format_type,omitempty"`
	Duration    *float64 `json:"duration,omitempty"`
	Path        string   `gorm:"not null" json:"path" binding:"required"`
}
