package model

// Property types accepted by the filter engine
const (
	TypePG        = "PG"
	TypeRoom      = "Room"
	TypeApartment = "Apartment"
)

// PropertyTypes is the closed category vocabulary
var PropertyTypes = []string{TypePG, TypeRoom, TypeApartment}

// AvailableAmenities is the closed amenity vocabulary
var AvailableAmenities = []string{
	"WiFi",
	"AC",
	"Power Backup",
	"Geyser",
	"Parking",
	"TV",
	"Washing Machine",
	"Food",
}

// IsKnownType reports whether t is in PropertyTypes
func IsKnownType(t string) bool {
	return contains(PropertyTypes, t)
}

// IsKnownAmenity reports whether a is in AvailableAmenities
func IsKnownAmenity(a string) bool {
	return contains(AvailableAmenities, a)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
