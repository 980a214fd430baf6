package objects

import (
	"fmt"
	"math"
)

// earthRadiusKm is the mean Earth radius used for great-circle distances.
const earthRadiusKm = 6371.0

// Coord is a point on the globe in decimal degrees.
type Coord struct {
	Latitude  float64
	Longitude float64
}

// String renders the coordinate as "(lat, lng)".
func (c Coord) String() string {
	return fmt.Sprintf("(%s, %s)", formatReal(c.Latitude), formatReal(c.Longitude))
}

// DistanceKm returns the haversine great-circle distance to other.
func (c Coord) DistanceKm(other Coord) float64 {
	lat1 := c.Latitude * math.Pi / 180
	lat2 := other.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLng := (other.Longitude - c.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

func parseCoord(v any) (any, error) {
	switch val := v.(type) {
	case Coord:
		return val, checkCoord(val)
	case []float64:
		if len(val) != 2 {
			return nil, fmt.Errorf("coordinate: expected [latitude, longitude], got %d elements", len(val))
		}
		c := Coord{Latitude: val[0], Longitude: val[1]}
		return c, checkCoord(c)
	case []any:
		if len(val) != 2 {
			return nil, fmt.Errorf("coordinate: expected [latitude, longitude], got %d elements", len(val))
		}
		lat, ok1 := toFloat(val[0])
		lng, ok2 := toFloat(val[1])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("coordinate: latitude and longitude must be numbers")
		}
		c := Coord{Latitude: lat, Longitude: lng}
		return c, checkCoord(c)
	default:
		return nil, fmt.Errorf("expected a coordinate, got %T", v)
	}
}

func checkCoord(c Coord) error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("coordinate: latitude %v out of range [-90, 90]", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("coordinate: longitude %v out of range [-180, 180]", c.Longitude)
	}
	return nil
}
