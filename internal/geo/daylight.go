package geo

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// SunTimesFunc returns sunrise and sunset for the calendar day starting at
// midnight. Zero times mean the sun does not rise or set that day.
type SunTimesFunc func(midnight time.Time, lat, lon float64) (rise, set time.Time)

// Daylight answers sunrise/sunset questions for a single reference point
type Daylight struct {
	Latitude  float64
	Longitude float64
	location  *time.Location
	sunTimes  SunTimesFunc
}

type DaylightOption func(*Daylight)

// WithSunTimes replaces the astronomical computation
func WithSunTimes(fn SunTimesFunc) DaylightOption {
	return func(d *Daylight) {
		d.sunTimes = fn
	}
}

// WithLocation sets the time zone used to decide calendar days
func WithLocation(loc *time.Location) DaylightOption {
	return func(d *Daylight) {
		if loc != nil {
			d.location = loc
		}
	}
}

func NewDaylight(lat, lon float64, opts ...DaylightOption) *Daylight {
	d := &Daylight{
		Latitude:  lat,
		Longitude: lon,
		location:  time.UTC,
		sunTimes:  solarSunTimes,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func solarSunTimes(midnight time.Time, lat, lon float64) (time.Time, time.Time) {
	return sunrise.SunriseSunset(lat, lon, midnight.Year(), midnight.Month(), midnight.Day())
}

// Location returns the time zone calendar days are taken in
func (d *Daylight) Location() *time.Location {
	return d.location
}

// Day returns local midnight of the calendar day containing t
func (d *Daylight) Day(t time.Time) time.Time {
	local := t.In(d.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, d.location)
}

// SunTimes returns sunrise and sunset of the calendar day containing t.
// ok is false when the sun does not both rise and set that day.
func (d *Daylight) SunTimes(t time.Time) (rise, set time.Time, ok bool) {
	rise, set = d.sunTimes(d.Day(t), d.Latitude, d.Longitude)
	if rise.IsZero() || set.IsZero() {
		return time.Time{}, time.Time{}, false
	}
	return rise, set, true
}

// IsDaylight reports whether t lies within [sunrise, sunset] of its day
func (d *Daylight) IsDaylight(t time.Time) bool {
	rise, set, ok := d.SunTimes(t)
	if !ok {
		return false
	}
	return !t.Before(rise) && !t.After(set)
}

// IsDaylight is a convenience for a one-off check in UTC calendar days
func IsDaylight(t time.Time, lat, lon float64) bool {
	return NewDaylight(lat, lon).IsDaylight(t)
}
