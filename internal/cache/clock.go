package cache

import "time"

// Clock is the time source used for TTL checks
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
