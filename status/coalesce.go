package status

import "sort"

// Entry is the snapshot of one member's coalesce-relevant state.
type Entry struct {
	Name     string
	Tag      string
	Severity Severity
	Message  string

	// Rank is the effective tie-break order among equally severe entries:
	// the explicit priority in a ranked pool, the insertion index otherwise.
	// Lower is more important.
	Rank int
}

// Report is the collapsed view of a pool: the single (severity, message)
// pair an orchestrator understands, plus the summarizer's composite text.
type Report struct {
	// Severity is the worst severity among the coalesced entries.
	Severity Severity

	// Message is the winning entry's own message.
	Message string

	// Summary is the composite message produced by the pool's summarizer.
	// Richer than Message but not part of the primary contract.
	Summary string
}

// Coalesce collapses a snapshot of member entries into a single Report.
// Entries must be given in insertion order. When skipUnknown is set, entries
// at Unknown severity are dropped first; if nothing remains the default
// Unknown report with empty message is returned. Otherwise the worst entry
// wins, ties broken by lower Rank. A nil summarizer defaults to WorstOnly.
//
// Coalesce is a pure function: identical entries and flags always produce
// an identical report.
func Coalesce(entries []Entry, skipUnknown bool, summarizer Summarizer) Report {
	if summarizer == nil {
		summarizer = WorstOnly{}
	}
	kept := keepKnown(entries, skipUnknown)
	if len(kept) == 0 {
		return Report{Severity: Unknown}
	}
	worst := SortWorstFirst(kept)[0]
	return Report{
		Severity: worst.Severity,
		Message:  worst.Message,
		Summary:  summarizer.Summarize(entries, skipUnknown),
	}
}

// SortWorstFirst returns a copy of entries ordered worst severity first,
// ties broken by ascending Rank. The sort is stable, so entries with equal
// severity and equal rank keep their given order.
func SortWorstFirst(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Severity != sorted[j].Severity {
			return sorted[i].Severity.WorseThan(sorted[j].Severity)
		}
		return sorted[i].Rank < sorted[j].Rank
	})
	return sorted
}

// keepKnown filters out Unknown entries when skipUnknown is set.
func keepKnown(entries []Entry, skipUnknown bool) []Entry {
	if !skipUnknown {
		return entries
	}
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Severity != Unknown {
			kept = append(kept, e)
		}
	}
	return kept
}
