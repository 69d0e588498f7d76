package worksite

import (
	"time"
)

// Worksite is a physical place of work. Its timezone anchors every
// calendar-day computation for the shifts worked there.
type Worksite struct {
	ID        string
	Name      string
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location resolves the worksite's IANA timezone, falling back to UTC
// when the name cannot be loaded.
func (w Worksite) Location() *time.Location {
	loc, err := time.LoadLocation(w.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
