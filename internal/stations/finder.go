package stations

import (
	"fmt"
	"sort"

	"github.com/windchart/backend-go/internal/geo"
	"github.com/windchart/backend-go/internal/models"
)

const defaultNearestLimit = 5

// LocationFinder looks up spots in the static location list
type LocationFinder struct {
	locations []models.Location
}

func NewLocationFinder(locations []models.Location) *LocationFinder {
	return &LocationFinder{locations: locations}
}

// All returns every location with its index
func (f *LocationFinder) All() []models.IndexedLocation {
	result := make([]models.IndexedLocation, len(f.locations))
	for i, location := range f.locations {
		result[i] = models.IndexedLocation{Index: i, Location: location}
	}
	return result
}

// FindLocation returns the location with the given name, or nil
func (f *LocationFinder) FindLocation(name string) *models.IndexedLocation {
	for i, location := range f.locations {
		if location.Name == name {
			return &models.IndexedLocation{Index: i, Location: location}
		}
	}
	return nil
}

// FindNearestLocations returns up to limit locations ordered by distance
// from lat, lon. A non-positive limit means the default of 5.
func (f *LocationFinder) FindNearestLocations(lat, lon float64, limit int) ([]models.IndexedLocation, error) {
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("invalid latitude: %f", lat)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("invalid longitude: %f", lon)
	}

	nearby := f.All()
	for i := range nearby {
		nearby[i].Distance = geo.Distance(lat, lon, nearby[i].Latitude, nearby[i].Longitude)
	}
	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})

	if limit <= 0 {
		limit = defaultNearestLimit
	}
	if limit > len(nearby) {
		limit = len(nearby)
	}
	return nearby[:limit], nil
}
