package catalog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListArtists_DefaultOrderByID(t *testing.T) {
	db := testDB(t)
	seedArtist(t, db, "Zimmer", "Germany", 1957)
	seedArtist(t, db, "Adams", "USA", 1947)
	seedArtist(t, db, "Morricone", "Italy", 1928)

	artists, err := ListArtists(db, ListParams{})
	require.NoError(t, err)

	require.Len(t, artists, 3)
	assert.Equal(t, uint(1), artists[0].ID)
	assert.Equal(t, uint(2), artists[1].ID)
	assert.Equal(t, uint(3), artists[2].ID)
}

func TestListArtists_PaginationWindow(t *testing.T) {
	db := testDB(t)
	for i := 1; i <= 7; i++ {
		seedArtist(t, db, fmt.Sprintf("Artist %d", i), "ES", 1950+i)
	}

	page, err := ListArtists(db, ListParams{Limit: 3, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, uint(4), page[0].ID)
	assert.Equal(t, uint(5), page[1].ID)
	assert.Equal(t, uint(6), page[2].ID)

	// last page is a partial one
	page, err = ListArtists(db, ListParams{Limit: 3, Offset: 3})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, uint(7), page[0].ID)
}

func TestListArtists_DefaultLimitIsFive(t *testing.T) {
	db := testDB(t)
	for i := 1; i <= 8; i++ {
		seedArtist(t, db, fmt.Sprintf("Artist %d", i), "FR", 1950+i)
	}

	page, err := ListArtists(db, ListParams{})
	require.NoError(t, err)
	assert.Len(t, page, 5)
}

func TestListArtists_OrderDescTieBreakByID(t *testing.T) {
	db := testDB(t)
	seedArtist(t, db, "First", "UK", 1960)
	seedArtist(t, db, "Second", "UK", 1980)
	seedArtist(t, db, "Third", "UK", 1960)

	artists, err := ListArtists(db, ListParams{
		Order: OrderSpec{{Field: "born_year", Direction: "desc"}},
	})
	require.NoError(t, err)

	require.Len(t, artists, 3)
	assert.Equal(t, "Second", artists[0].Name)
	// tie on born_year resolves by insertion order
	assert.Equal(t, "First", artists[1].Name)
	assert.Equal(t, "Third", artists[2].Name)
}

func TestListArtists_MultipleOrderKeys(t *testing.T) {
	db := testDB(t)
	seedArtist(t, db, "A", "Italy", 1928)
	seedArtist(t, db, "B", "Germany", 1957)
	seedArtist(t, db, "C", "Germany", 1935)

	artists, err := ListArtists(db, ListParams{
		Order: OrderSpec{
			{Field: "country", Direction: "asc"},
			{Field: "born_year", Direction: "desc"},
		},
	})
	require.NoError(t, err)

	require.Len(t, artists, 3)
	assert.Equal(t, "B", artists[0].Name)
	assert.Equal(t, "C", artists[1].Name)
	assert.Equal(t, "A", artists[2].Name)
}

func TestListArtists_FilterOperators(t *testing.T) {
	db := testDB(t)
	seedArtist(t, db, "Morricone", "Italy", 1928)
	seedArtist(t, db, "Zimmer", "Germany", 1957)
	seedArtist(t, db, "Shore", "Canada", 1946)

	cases := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"eq", Filter{Field: "country", Op: OpEq, Value: "Italy"}, []string{"Morricone"}},
		{"default op is eq", Filter{Field: "country", Value: "Italy"}, []string{"Morricone"}},
		{"ne", Filter{Field: "country", Op: OpNe, Value: "Italy"}, []string{"Zimmer", "Shore"}},
		{"gt", Filter{Field: "born_year", Op: OpGt, Value: 1946}, []string{"Zimmer"}},
		{"lt", Filter{Field: "born_year", Op: OpLt, Value: 1946}, []string{"Morricone"}},
		{"ge", Filter{Field: "born_year", Op: OpGe, Value: 1946}, []string{"Zimmer", "Shore"}},
		{"le", Filter{Field: "born_year", Op: OpLe, Value: 1946}, []string{"Morricone", "Shore"}},
		{"like", Filter{Field: "name", Op: OpLike, Value: "%or%"}, []string{"Morricone", "Shore"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			filter := tc.filter
			artists, err := ListArtists(db, ListParams{Filter: &filter})
			require.NoError(t, err)

			var names []string
			for _, a := range artists {
				names = append(names, a.Name)
			}
			assert.ElementsMatch(t, tc.want, names)
		})
	}
}

func TestListArtists_FilterUnknownField(t *testing.T) {
	db := testDB(t)
	seedArtist(t, db, "Zimmer", "Germany", 1957)

	_, err := ListArtists(db, ListParams{
		Filter: &Filter{Field: "password", Op: OpEq, Value: "x"},
	})

	var fnf *FieldNotFoundError
	require.ErrorAs(t, err, &fnf)
	assert.Equal(t, "Artist", fnf.Entity)
	assert.Equal(t, "password", fnf.Field)
}

func TestListSongs_OrderUnknownField(t *testing.T) {
	db := testDB(t)
	seedSong(t, db, "Tetris Theme", nil)

	_, err := ListSongs(db, ListParams{
		Order: OrderSpec{{Field: "popularity", Direction: "desc"}},
	})

	var fnf *FieldNotFoundError
	require.ErrorAs(t, err, &fnf)
	assert.Equal(t, "Song", fnf.Entity)
	assert.Equal(t, "popularity", fnf.Field)
}

func TestListArtists_InvalidOperator(t *testing.T) {
	db := testDB(t)
	seedArtist(t, db, "Zimmer", "Germany", 1957)

	_, err := ListArtists(db, ListParams{
		Filter: &Filter{Field: "name", Op: "between", Value: "x"},
	})

	var iop *InvalidOperatorError
	require.ErrorAs(t, err, &iop)
	assert.True(t, IsValidation(err))
}

func TestListArtists_EmptyPageIsNotFound(t *testing.T) {
	db := testDB(t)
	seedArtist(t, db, "Zimmer", "Germany", 1957)

	_, err := ListArtists(db, ListParams{
		Filter: &Filter{Field: "country", Op: OpEq, Value: "Atlantis"},
	})

	require.ErrorIs(t, err, ErrNotFound)

	var store *StoreError
	assert.False(t, errors.As(err, &store))
}

func TestListArtists_EmptyStoreIsNotFound(t *testing.T) {
	db := testDB(t)

	_, err := ListArtists(db, ListParams{})
	require.ErrorIs(t, err, ErrNotFound)
}
