package models

// Location is a monitored spot. Its index in Locations is the stable key
// used for coloring and selection.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Locations is ordered north to south along the Jæren coastline
var Locations = []Location{
	{Name: "sokn", Latitude: 59.05457902524904, Longitude: 5.678849408617339},
	{Name: "sandestranden", Latitude: 59.01795083498445, Longitude: 5.588636433752413},
	{Name: "harestadvika", Latitude: 59.01501042866349, Longitude: 5.6390239691650095},
	{Name: "malthaugbrautene", Latitude: 58.955234975464634, Longitude: 5.621060412724773},
	{Name: "håhammarbrautene", Latitude: 58.93124735525694, Longitude: 5.642344124456258},
	{Name: "liapynten", Latitude: 58.93375, Longitude: 5.682029999999941},
	{Name: "sømmevågen", Latitude: 58.90017, Longitude: 5.636110000000031},
	{Name: "sirigrunnen", Latitude: 58.96802, Longitude: 5.765909999999963},
	{Name: "vaulen", Latitude: 58.92472, Longitude: 5.7487599999999475},
	{Name: "solasanden", Latitude: 58.88217149891776, Longitude: 5.597322917566316},
	{Name: "rege", Latitude: 58.876984214472, Longitude: 5.592756306798037},
	{Name: "ølbørsanden", Latitude: 58.87012, Longitude: 5.5693200000000616},
	{Name: "hellestøstranden", Latitude: 58.83583, Longitude: 5.551389999999969},
	{Name: "selestranda", Latitude: 58.81598, Longitude: 5.541879999999992},
	{Name: "boresanden", Latitude: 58.79485, Longitude: 5.54672000000005},
	{Name: "revehamnen", Latitude: 58.77161, Longitude: 5.514279999999985},
	{Name: "søre revtangen", Latitude: 58.75211, Longitude: 5.489759999999933},
	{Name: "syltertangen", Latitude: 58.69763, Longitude: 5.540570000000002},
	{Name: "nærlandssanden", Latitude: 58.68483, Longitude: 5.549070000000029},
}

// IndexedLocation is a Location together with its index in Locations.
// Distance is only set by nearest-location lookups.
type IndexedLocation struct {
	Index int `json:"index"`
	Location
	Distance float64 `json:"distance,omitempty"`
}
