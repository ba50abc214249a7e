package pipeline

// RunStats tracks aggregate counters across one scan of the library.
type RunStats struct {
	Total   int // Video files seen.
	Renamed int // Files renamed (or that would be, in dry-run).
	Skipped int // Files left alone: compliant, unparseable, blocked, or failed.
}
