package utils

import (
	"strings"
)

// amenityAliases maps lower-cased spellings the oracle tends to produce
// onto the amenity vocabulary labels.
var amenityAliases = map[string]string{
	"wifi":             "WiFi",
	"wi-fi":            "WiFi",
	"wi fi":            "WiFi",
	"internet":         "WiFi",
	"broadband":        "WiFi",
	"ac":               "AC",
	"a/c":              "AC",
	"aircon":           "AC",
	"air con":          "AC",
	"air conditioner":  "AC",
	"air conditioning": "AC",
	"power backup":     "Power Backup",
	"power back up":    "Power Backup",
	"backup power":     "Power Backup",
	"inverter":         "Power Backup",
	"generator":        "Power Backup",
	"geyser":           "Geyser",
	"water heater":     "Geyser",
	"hot water":        "Geyser",
	"parking":          "Parking",
	"car park":         "Parking",
	"car parking":      "Parking",
	"tv":               "TV",
	"television":       "TV",
	"washing machine":  "Washing Machine",
	"washer":           "Washing Machine",
	"laundry":          "Washing Machine",
	"food":             "Food",
	"meals":            "Food",
	"meals included":   "Food",
	"mess":             "Food",
}

// NormalizeAmenity maps an amenity name to its vocabulary label.
// It returns false when the name matches no known amenity.
func NormalizeAmenity(amenity string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(amenity))
	if key == "" {
		return "", false
	}
	if canonical, ok := amenityAliases[key]; ok {
		return canonical, true
	}
	return "", false
}
