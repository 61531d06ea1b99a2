package utils

import "testing"

func TestNormalizeAmenity(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"WiFi", "WiFi", true},
		{" wi-fi ", "WiFi", true},
		{"Air Conditioning", "AC", true},
		{"aircon", "AC", true},
		{"hot water", "Geyser", true},
		{"Washer", "Washing Machine", true},
		{"Power Backup", "Power Backup", true},
		{"meals", "Food", true},
		{"Swimming pool", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizeAmenity(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("NormalizeAmenity(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
