package admin

// Policy holds the administrative knobs that gate shift materialization.
// DaysUntilLocked is the age in days after which a calendar day's
// attendance is considered final and safe to precompute.
type Policy struct {
	DaysUntilLocked int
}
