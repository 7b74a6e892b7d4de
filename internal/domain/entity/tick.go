package entity

// TickReport summarizes one scheduler tick
type TickReport struct {
	Minute        int
	Due           int // active profiles scheduled for this minute
	Eligible      int // due profiles with a location, outside the quiet window
	Locations     int // distinct locations fetched
	FetchFailures int
	Delivered     int
	Skipped       int // no snapshot or no owner
	Failed        int
}
