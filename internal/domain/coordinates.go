package domain

import (
	"math"
	"strconv"
	"strings"
)

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ParseCoordinate coerces a raw cell into a finite float.
// Anything else (empty, text, NaN, Inf) reports ok=false.
func ParseCoordinate(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// Coordinates returns the record position when both cells are numeric.
func (r CollectionRecord) Coordinates() (Coordinates, bool) {
	lat, ok := ParseCoordinate(r.Latitude)
	if !ok {
		return Coordinates{}, false
	}
	lon, ok := ParseCoordinate(r.Longitude)
	if !ok {
		return Coordinates{}, false
	}
	return Coordinates{Lat: lat, Lon: lon}, true
}
