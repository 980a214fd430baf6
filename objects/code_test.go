package objects

import "testing"

// TestNormalizeCode verifies trailing-whitespace and blank-line handling.
func TestNormalizeCode(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"Already clean", "a\nb", "a\nb"},
		{"Trailing spaces", "a   \nb\t\n", "a\nb"},
		{"Surrounding blank lines", "\n\na\nb\n\n", "a\nb"},
		{"Internal blank line kept", "a\n\nb", "a\n\nb"},
		{"Indentation preserved", "def f():\n    pass  ", "def f():\n    pass"},
		{"Empty input", "", ""},
		{"Only whitespace", " \n\t\n", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeCode(tc.in); got != tc.want {
				t.Errorf("NormalizeCode(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// TestCoordDistance sanity-checks the haversine math against a known
// city pair.
func TestCoordDistance(t *testing.T) {
	paris := Coord{Latitude: 48.8566, Longitude: 2.3522}
	london := Coord{Latitude: 51.5074, Longitude: -0.1278}

	d := paris.DistanceKm(london)
	if d < 330 || d > 360 {
		t.Errorf("DistanceKm(Paris, London) = %v km, want roughly 344", d)
	}

	if got := paris.DistanceKm(paris); got != 0 {
		t.Errorf("DistanceKm to self = %v, want 0", got)
	}
}
