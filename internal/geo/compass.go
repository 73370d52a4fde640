package geo

import "math"

var compassSectors = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// CompassSectors returns the 16 sector labels clockwise from north
func CompassSectors() []string {
	return compassSectors[:]
}

// DegreesToCompassSector maps an angle to one of 16 sectors of 22.5°.
// Exact half-sector boundaries round up to the next sector. Non-finite
// angles yield an empty string.
func DegreesToCompassSector(angle float64) string {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return ""
	}
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	idx := int(math.Floor(a/22.5+0.5)) % len(compassSectors)
	return compassSectors[idx]
}
