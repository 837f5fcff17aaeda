package pipeline

// RunStats tracks aggregate counters across one rename run. In dry-run mode
// Renamed counts the entries that would be renamed.
type RunStats struct {
	Total   int // Files discovered.
	Planned int // Entries in the plan after no-op and collision filtering.
	Renamed int // Renames performed (or previewed, in dry-run).
	Skipped int // Collision skips.
	Failed  int // Individual rename failures.
}
