package music

// Artist is a composer or performer owning zero or more songs. The song
// relationship is derived by query; artists never store song ids directly.
type Artist struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"not null;index" json:"name" binding:"required"`
	Country  *string `json:"country,omitempty"`
	BornYear *int    `gorm:"column:born_year" json:"born_year,omitempty"`

	Songs []Song `gorm:"foreignKey:ArtistID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}
