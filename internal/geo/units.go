package geo

// KnotsPerMeterPerSecond converts m/s to knots
const KnotsPerMeterPerSecond = 1.9438452

func ToKnots(metersPerSecond float64) float64 {
	return metersPerSecond * KnotsPerMeterPerSecond
}

func FromKnots(knots float64) float64 {
	return knots / KnotsPerMeterPerSecond
}
