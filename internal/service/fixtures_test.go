package service

import (
	"fmt"

	"propertyfinder/internal/model"
)

// sampleListings mirrors the built-in catalog closely enough for the
// predicate and pagination tests
func sampleListings() []model.Listing {
	return []model.Listing{
		{ID: 1, Name: "Cozy Studio Koramangala", Type: "Apartment", Address: "1st Block, Koramangala, Bangalore", Price: 25000, Rating: 4.5, Amenities: model.JSONArray{"WiFi", "AC", "Geyser", "Parking", "TV"}},
		{ID: 2, Name: "Gents PG Indiranagar", Type: "PG", Address: "CMH Road, Indiranagar, Bangalore", Price: 12000, Rating: 4.2, Amenities: model.JSONArray{"WiFi", "Power Backup", "Washing Machine", "Food"}},
		{ID: 3, Name: "Private Room HSR Layout", Type: "Room", Address: "Sector 4, HSR Layout, Bangalore", Price: 18000, Rating: 4.8, Amenities: model.JSONArray{"AC", "Geyser", "Parking", "Washing Machine"}},
		{ID: 4, Name: "Luxury 2BHK Jayanagar", Type: "Apartment", Address: "4th Block, Jayanagar, Bangalore", Price: 45000, Rating: 4.9, Amenities: model.JSONArray{"WiFi", "AC", "Power Backup", "Geyser", "TV", "Parking", "Washing Machine"}},
		{ID: 5, Name: "Ladies PG BTM Layout", Type: "PG", Address: "2nd Stage, BTM Layout, Bangalore", Price: 9500, Rating: 3.9, Amenities: model.JSONArray{"WiFi", "Food", "Washing Machine", "Geyser"}},
		{ID: 6, Name: "Single Room Marathahalli", Type: "Room", Address: "Outer Ring Road, Marathahalli, Bangalore", Price: 15000, Rating: 4.0, Amenities: model.JSONArray{"WiFi", "AC", "Power Backup"}},
		{ID: 7, Name: "Modern 1BHK Whitefield", Type: "Apartment", Address: "ITPL Main Road, Whitefield, Bangalore", Price: 22000, Rating: 4.3, Amenities: model.JSONArray{"WiFi", "AC", "Power Backup", "Parking", "Geyser"}},
		{ID: 8, Name: "Student PG near Christ University", Type: "PG", Address: "Hosur Road, S.G. Palya, Bangalore", Price: 8000, Rating: 3.5, Amenities: model.JSONArray{"WiFi", "Food"}},
		{ID: 9, Name: "Independent Room Malleshwaram", Type: "Room", Address: "8th Cross, Malleshwaram, Bangalore", Price: 13000, Rating: 4.1, Amenities: model.JSONArray{"Geyser", "Parking"}},
		{ID: 10, Name: "Penthouse with Terrace", Type: "Apartment", Address: "Sadashivanagar, Bangalore", Price: 50000, Rating: 5.0, Amenities: model.JSONArray{"WiFi", "AC", "Power Backup", "Geyser", "TV", "Parking", "Washing Machine", "Food"}},
	}
}

func sampleCatalog() model.Catalog {
	c, err := model.NewCatalog(sampleListings())
	if err != nil {
		panic(err)
	}
	return c
}

func ids(listings []model.Listing) []int {
	out := make([]int, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}

func generatedListings(n int) []model.Listing {
	out := make([]model.Listing, n)
	for i := range out {
		out[i] = model.Listing{ID: i + 1, Name: fmt.Sprintf("Listing %d", i+1), Type: "Room", Price: 10000, Rating: 4}
	}
	return out
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
