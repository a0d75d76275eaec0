package tablemap

// Stats is a point-in-time snapshot of a HashMap's internal state.
type Stats struct {
	// Size is the number of live keys.
	Size int
	// Capacity is the current slot count.
	Capacity int
	// Tombstones is the number of deleted-but-not-reclaimed slots. Always
	// zero for the chaining strategy.
	Tombstones int
}
