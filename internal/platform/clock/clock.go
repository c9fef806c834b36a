package clock

import "time"

// System is the production clock; timestamps are stored in UTC.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}
