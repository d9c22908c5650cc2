package music

// FieldSet declares which fields of an entity are exposed to the generic
// filter/order/update machinery, mapping exposed names to column names.
// Anything outside the map is rejected before a query is built, so only
// allowlisted column names ever reach a SQL fragment.
type FieldSet struct {
	Entity    string
	columns   map[string]string
	immutable map[string]struct{}
}

// Column resolves an exposed field name to its column name.
func (f FieldSet) Column(field string) (string, bool) {
	col, ok := f.columns[field]
	return col, ok
}

// Immutable reports whether updates to the field must be rejected.
func (f FieldSet) Immutable(field string) bool {
	_, ok := f.immutable[field]
	return ok
}

var ArtistFields = FieldSet{
	Entity: "Artist",
	columns: map[string]string{
		"id":        "id",
		"name":      "name",
		"country":   "country",
		"born_year": "born_year",
	},
	immutable: map[string]struct{}{
		"id": {},
	},
}

// Song locks everything but name after creation; only Artist keeps its
// descriptive fields revisable.
var SongFields = FieldSet{
	Entity: "Song",
	columns: map[string]string{
		"id":           "id",
		"name":         "name",
		"artist_id":    "artist_id",
		"created_year": "created_year",
		"format_type":  "format_type",
		"duration":     "duration",
		"path":         "path",
	},
	immutable: map[string]struct{}{
		"id":           {},
		"artist_id":    {},
		"created_year": {},
		"format_type":  {},
		"duration":     {},
		"path":         {},
	},
}
