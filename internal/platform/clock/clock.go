package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// Zoned reports the current time in a fixed location, whatever the server's
// local zone is.
type Zoned struct {
	Location *time.Location
}

func (z Zoned) Now() time.Time {
	if z.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(z.Location)
}

// Fixed always returns At; tests use it.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}
