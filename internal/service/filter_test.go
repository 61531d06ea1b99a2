package service

import (
	"testing"

	"propertyfinder/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDeriveResultSet_DefaultsMatchEverything(t *testing.T) {
	listings := sampleListings()
	got := DeriveResultSet(listings, DefaultFilterRules.Default())
	assert.Equal(t, ids(listings), ids(got))
}

func TestMatches(t *testing.T) {
	base := DefaultFilterRules.Default()
	listings := sampleListings()

	tests := []struct {
		name   string
		modify func(f *model.FilterSet)
		want   []int
	}{
		{
			name:   "search matches name case-insensitively",
			modify: func(f *model.FilterSet) { f.SearchQuery = "pg" },
			want:   []int{2, 5, 8},
		},
		{
			name:   "search matches address",
			modify: func(f *model.FilterSet) { f.SearchQuery = "whitefield" },
			want:   []int{7},
		},
		{
			name:   "search does not look at description",
			modify: func(f *model.FilterSet) { f.SearchQuery = "swimming pool" },
			want:   []int{},
		},
		{
			name:   "price bounds are inclusive",
			modify: func(f *model.FilterSet) { f.Price = model.PriceRange{Min: 12000, Max: 15000} },
			want:   []int{2, 6, 9},
		},
		{
			name:   "types are disjunctive",
			modify: func(f *model.FilterSet) { f.Types = []string{"PG", "Room"} },
			want:   []int{2, 3, 5, 6, 8, 9},
		},
		{
			name:   "amenities are conjunctive",
			modify: func(f *model.FilterSet) { f.Amenities = []string{"WiFi", "AC"} },
			want:   []int{1, 4, 6, 7, 10},
		},
		{
			name:   "rating is a minimum",
			modify: func(f *model.FilterSet) { f.Rating = 4.5 },
			want:   []int{1, 3, 4, 10},
		},
		{
			name:   "unknown type matches nothing",
			modify: func(f *model.FilterSet) { f.Types = []string{"Villa"} },
			want:   []int{},
		},
		{
			name:   "favorites only with no favorites",
			modify: func(f *model.FilterSet) { f.ShowFavoritesOnly = true },
			want:   []int{},
		},
		{
			name: "all conditions combined",
			modify: func(f *model.FilterSet) {
				f.Types = []string{"PG"}
				f.Amenities = []string{"Food"}
				f.Price = model.PriceRange{Min: 0, Max: 10000}
			},
			want: []int{5, 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := base.Clone()
			tt.modify(&f)
			assert.Equal(t, tt.want, ids(DeriveResultSet(listings, f)))
		})
	}
}

func TestMatches_FavoritesOnly(t *testing.T) {
	f := DefaultFilterRules.Default()
	f.ShowFavoritesOnly = true

	fav := model.Listing{ID: 1, Price: 100, IsFavorite: true}
	notFav := model.Listing{ID: 2, Price: 100}

	assert.True(t, Matches(fav, f))
	assert.False(t, Matches(notFav, f))
}

func TestDeriveResultSet_Idempotent(t *testing.T) {
	f := DefaultFilterRules.Default()
	f.Amenities = []string{"Geyser"}
	f.Rating = 4

	once := DeriveResultSet(sampleListings(), f)
	twice := DeriveResultSet(once, f)
	assert.Equal(t, ids(once), ids(twice))
}

func TestDeriveResultSet_EmptyCatalog(t *testing.T) {
	got := DeriveResultSet(nil, DefaultFilterRules.Default())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
