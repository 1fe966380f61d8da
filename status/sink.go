package status

// Sink is the external collaborator that receives the coalesced report.
// A pool calls Update at most once per commit, and only when the freshly
// computed report differs from the last committed one.
type Sink interface {
	Update(report Report) error
}

// SinkFunc is an adapter to allow ordinary functions to be used as Sinks.
type SinkFunc func(report Report) error

// Update calls f(report).
func (f SinkFunc) Update(report Report) error {
	return f(report)
}

// LogLevel is the level of a member log line.
type LogLevel int

const (
	// LevelInfo is routine operational detail.
	LevelInfo LogLevel = iota
	// LevelWarning is a condition worth attention that is not yet a failure.
	LevelWarning
	// LevelError is a failure attributable to the tagged member.
	LevelError
)

// String returns the lowercase name of the level.
func (l LogLevel) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// LogSink receives member log lines. Purely observational; it has no effect
// on coalescing.
type LogSink interface {
	Log(tag string, level LogLevel, text string)
}

// LogSinkFunc is an adapter to allow ordinary functions to be used as LogSinks.
type LogSinkFunc func(tag string, level LogLevel, text string)

// Log calls f(tag, level, text).
func (f LogSinkFunc) Log(tag string, level LogLevel, text string) {
	f(tag, level, text)
}
