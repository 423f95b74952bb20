package verification

import (
	"math"
	"plantao-service/internal/app/models"
	"plantao-service/internal/pkg/constvars"
)

// DistanceMeters is the great-circle distance between a and b.
func DistanceMeters(a, b models.GeoPoint) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLng := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * constvars.EarthRadiusInMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
