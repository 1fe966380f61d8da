package status

import "fmt"

// StatusConfig carries the optional attributes of a new Status.
type StatusConfig struct {
	// Tag is the display label used in summaries and log lines.
	// Defaults to the status name.
	Tag string

	// Priority is the explicit tie-break rank; lower is more important.
	// Leave nil for insertion-order ranking. A pool accepts either all
	// ranked members or all unranked members, never a mix.
	Priority *int
}

// Rank is a convenience for building a StatusConfig with an explicit priority.
func Rank(priority int) *int {
	return &priority
}

// Status is one independently tracked, named health indicator. It is created
// detached, registered with exactly one Pool, and mutated only by the single
// goroutine driving that pool.
type Status struct {
	name     string
	tag      string
	severity Severity
	message  string

	priority int
	ranked   bool

	// set by the owning pool on Add, cleared on Remove
	pool  *Pool
	index int
}

// NewStatus creates a detached status named name, at Unknown severity.
func NewStatus(name string, config ...StatusConfig) *Status {
	st := &Status{name: name, tag: name}
	if len(config) > 0 {
		cfg := config[0]
		if cfg.Tag != "" {
			st.tag = cfg.Tag
		}
		if cfg.Priority != nil {
			st.priority = *cfg.Priority
			st.ranked = true
		}
	}
	return st
}

// Name returns the identifier the status is registered under.
func (s *Status) Name() string {
	return s.name
}

// Tag returns the display label.
func (s *Status) Tag() string {
	return s.tag
}

// Severity returns the current severity.
func (s *Status) Severity() Severity {
	return s.severity
}

// Message returns the free-text message accompanying the current severity.
func (s *Status) Message() string {
	return s.message
}

// Priority returns the explicit tie-break rank and whether one was assigned.
func (s *Status) Priority() (int, bool) {
	return s.priority, s.ranked
}

// Set assigns severity and message atomically. A severity outside the
// enumeration fails with ErrInvalidSeverity and leaves the status untouched.
// When the owning pool auto-commits and no hold scope is open, a commit is
// attempted; commit failures are logged, never returned.
func (s *Status) Set(severity Severity, message string) error {
	if !severity.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSeverity, int(severity))
	}
	s.severity = severity
	s.message = message
	if s.pool != nil {
		s.pool.memberMutated()
	}
	return nil
}

// Unset returns the status to Unknown with an empty message.
func (s *Status) Unset() {
	_ = s.Set(Unknown, "")
}

// Active sets the status to Active with the given message.
func (s *Status) Active(message string) {
	_ = s.Set(Active, message)
}

// Maintenance sets the status to Maintenance with the given message.
func (s *Status) Maintenance(message string) {
	_ = s.Set(Maintenance, message)
}

// Waiting sets the status to Waiting with the given message.
func (s *Status) Waiting(message string) {
	_ = s.Set(Waiting, message)
}

// Blocked sets the status to Blocked with the given message.
func (s *Status) Blocked(message string) {
	_ = s.Set(Blocked, message)
}

// Info forwards text to the pool's log sink at info level, tagged with the
// status tag. Purely observational; severity and message are untouched.
// Dropped while the status is detached.
func (s *Status) Info(text string) {
	s.log(LevelInfo, text)
}

// Warning forwards text to the pool's log sink at warning level.
func (s *Status) Warning(text string) {
	s.log(LevelWarning, text)
}

// Error forwards text to the pool's log sink at error level.
func (s *Status) Error(text string) {
	s.log(LevelError, text)
}

func (s *Status) log(level LogLevel, text string) {
	if s.pool == nil || s.pool.log == nil {
		return
	}
	s.pool.log.Log(s.tag, level, text)
}

// entry snapshots the coalesce-relevant fields. The effective rank folds the
// two tie-break modes into one rule: explicit priority when ranked, insertion
// index otherwise. Lower wins either way.
func (s *Status) entry() Entry {
	rank := s.index
	if s.ranked {
		rank = s.priority
	}
	return Entry{
		Name:     s.name,
		Tag:      s.tag,
		Severity: s.severity,
		Message:  s.message,
		Rank:     rank,
	}
}

func (s *Status) String() string {
	return fmt.Sprintf("<%s (%s): %s>", s.severity, s.tag, s.message)
}
