package employee

import "time"

type Employee struct {
	ID        string
	FullName  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
