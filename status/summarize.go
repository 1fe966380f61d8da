package status

import (
	"fmt"
	"strings"
)

// Summarizer produces the composite message of a report from a snapshot of
// member entries in insertion order. Implementations must be deterministic.
type Summarizer interface {
	Summarize(entries []Entry, skipUnknown bool) string
}

// WorstOnly summarizes a pool by its single worst member.
//
// With members workload=Blocked("oom"), relation_1=Active("ok") the summary
// reads:
//
//	(workload) oom
//
// The zero value is ready to use.
type WorstOnly struct {
	// Format receives the winning member's tag and message.
	// Defaults to "(%s) %s".
	Format string
}

// Summarize returns the formatted worst entry, or "" when nothing qualifies.
func (w WorstOnly) Summarize(entries []Entry, skipUnknown bool) string {
	kept := keepKnown(entries, skipUnknown)
	if len(kept) == 0 {
		return ""
	}
	format := w.Format
	if format == "" {
		format = "(%s) %s"
	}
	worst := SortWorstFirst(kept)[0]
	return fmt.Sprintf(format, worst.Tag, worst.Message)
}

// Summary lists every member worst-first.
//
// With members workload=Blocked("oom"), relation_1=Active("ok"),
// rel2=Waiting("retrying") the summary reads:
//
//	(workload:blocked) oom; (rel2:waiting) retrying; (relation_1:active) ok
//
// The zero value is ready to use.
type Summary struct {
	// Format receives each member's tag, severity name, and message.
	// Defaults to "(%s:%s) %s".
	Format string

	// Separator joins member fragments. Defaults to "; ".
	Separator string
}

// Summarize returns every qualifying entry formatted worst-first.
func (s Summary) Summarize(entries []Entry, skipUnknown bool) string {
	format := s.Format
	if format == "" {
		format = "(%s:%s) %s"
	}
	sep := s.Separator
	if sep == "" {
		sep = "; "
	}

	kept := keepKnown(entries, skipUnknown)
	fragments := make([]string, 0, len(kept))
	for _, e := range SortWorstFirst(kept) {
		fragments = append(fragments, fmt.Sprintf(format, e.Tag, e.Severity, e.Message))
	}
	return strings.Join(fragments, sep)
}

// Condensed summarizes a pool as a severity histogram, worst-first.
//
// With fifteen blocked, forty-three waiting and twelve active members the
// summary reads:
//
//	15 blocked; 43 waiting; 12 active
//
// An all-Active pool summarizes to the empty string. Ranks are ignored.
// skipUnknown drops the unknown bucket from the output but not from the
// all-Active check, so a pool of active and unknown members still reports
// its active count. The zero value is ready to use.
type Condensed struct {
	// Format receives the member count and the severity name.
	// Defaults to "%d %s".
	Format string

	// Separator joins severity buckets. Defaults to "; ".
	Separator string
}

// Summarize returns the per-severity counts, worst severity first.
func (c Condensed) Summarize(entries []Entry, skipUnknown bool) string {
	format := c.Format
	if format == "" {
		format = "%d %s"
	}
	sep := c.Separator
	if sep == "" {
		sep = "; "
	}

	var counts [Blocked + 1]int
	for _, e := range entries {
		counts[e.Severity]++
	}

	allActive := counts[Active] > 0
	for sev := range counts {
		if Severity(sev) != Active && counts[sev] > 0 {
			allActive = false
		}
	}
	if allActive {
		return ""
	}

	fragments := make([]string, 0, len(counts))
	for sev := Blocked; sev >= Unknown; sev-- {
		if counts[sev] == 0 {
			continue
		}
		if skipUnknown && sev == Unknown {
			continue
		}
		fragments = append(fragments, fmt.Sprintf(format, counts[sev], sev))
	}
	return strings.Join(fragments, sep)
}
