package status

import "fmt"

// Decl declares one member of a pool shape. Declared members are
// instantiated into owned Status values, in order, when the pool is built.
type Decl struct {
	// Name is the unique member identifier. Required.
	Name string

	// Tag is the display label. Defaults to Name.
	Tag string

	// Priority is the explicit tie-break rank; lower is more important.
	// Either every declared member carries one or none does.
	Priority *int
}

// PoolConfig configures a Pool.
type PoolConfig struct {
	// Name labels the pool in its own log lines. Default: "status".
	Name string

	// SkipUnknown excludes members at Unknown severity from coalescing.
	SkipUnknown bool

	// AutoCommit commits after every mutation outside a hold scope.
	AutoCommit bool

	// Summarizer shapes the composite report message. Default: WorstOnly.
	Summarizer Summarizer

	// Sink receives the coalesced report on every changed commit.
	// A pool without a sink still tracks its last committed report.
	Sink Sink

	// Log receives member log lines. Default: discard.
	Log LogSink

	// Statuses is the pool shape: members instantiated at construction.
	Statuses []Decl
}

// tie-break modes; fixed by the first member added to a non-empty pool
type priorityMode int

const (
	modeImplicit priorityMode = iota // insertion order ranks members
	modeExplicit                     // every member carries a priority
)

// Pool is an insertion-ordered, name-addressable collection of Status
// entities that collapses into a single report on commit. A Pool and its
// members belong to one goroutine; the hold scope is a reentrancy counter,
// not a lock.
type Pool struct {
	name        string
	skipUnknown bool
	autoCommit  bool
	summarizer  Summarizer
	sink        Sink
	log         LogSink

	members   map[string]*Status
	order     []string
	mode      priorityMode
	nextIndex int

	holdDepth int
	committed *Report // nil until the first commit runs
}

// NewPool creates a pool and instantiates its declared members in order.
// Declarations that repeat a name fail with ErrDuplicateName; declarations
// that mix ranked and unranked members fail with ErrMixedPriorityMode.
func NewPool(config ...PoolConfig) (*Pool, error) {
	cfg := PoolConfig{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Name == "" {
		cfg.Name = "status"
	}
	if cfg.Summarizer == nil {
		cfg.Summarizer = WorstOnly{}
	}
	if cfg.Log == nil {
		cfg.Log = discardLog{}
	}

	p := &Pool{
		name:        cfg.Name,
		skipUnknown: cfg.SkipUnknown,
		autoCommit:  cfg.AutoCommit,
		summarizer:  cfg.Summarizer,
		sink:        cfg.Sink,
		log:         cfg.Log,
		members:     make(map[string]*Status, len(cfg.Statuses)),
	}

	for _, d := range cfg.Statuses {
		st := NewStatus(d.Name, StatusConfig{Tag: d.Tag, Priority: d.Priority})
		if err := p.Add(st); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Name returns the pool's display name.
func (p *Pool) Name() string {
	return p.name
}

// Add registers st under its own name. It fails with ErrDuplicateName when
// the name is taken or st is already owned, and with ErrMixedPriorityMode
// when st's priority presence conflicts with the existing members' mode.
// Failed adds leave the pool untouched.
func (p *Pool) Add(st *Status) error {
	if st.pool != nil {
		return fmt.Errorf("%w: %q is already registered", ErrDuplicateName, st.name)
	}
	if _, ok := p.members[st.name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, st.name)
	}

	mode := modeImplicit
	if st.ranked {
		mode = modeExplicit
	}
	if len(p.members) == 0 {
		p.mode = mode
	} else if p.mode != mode {
		return fmt.Errorf("%w: adding %q", ErrMixedPriorityMode, st.name)
	}

	st.pool = p
	st.index = p.nextIndex
	p.nextIndex++
	p.members[st.name] = st
	p.order = append(p.order, st.name)
	return nil
}

// AddNamed registers st under name, overriding the name it was created with.
// A tag that was defaulted from the old name follows the rename. A failed
// add leaves st exactly as it was.
func (p *Pool) AddNamed(name string, st *Status) error {
	if name == "" || name == st.name {
		return p.Add(st)
	}

	prevName, prevTag := st.name, st.tag
	if st.tag == st.name {
		st.tag = name
	}
	st.name = name

	if err := p.Add(st); err != nil {
		st.name, st.tag = prevName, prevTag
		return err
	}
	return nil
}

// Remove unregisters and forgets the named member. It fails with
// ErrUnknownMember when absent. The last committed report is untouched
// until the next commit.
func (p *Pool) Remove(name string) error {
	st, ok := p.members[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMember, name)
	}

	st.pool = nil
	delete(p.members, name)
	for i, n := range p.order {
		if n == name {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the member registered under name, or ErrUnknownMember.
func (p *Pool) Get(name string) (*Status, error) {
	st, ok := p.members[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMember, name)
	}
	return st, nil
}

// SetStatus looks up the named member and sets its severity and message.
func (p *Pool) SetStatus(name string, severity Severity, message string) error {
	st, err := p.Get(name)
	if err != nil {
		return err
	}
	return st.Set(severity, message)
}

// Members returns the member names in insertion order.
func (p *Pool) Members() []string {
	names := make([]string, len(p.order))
	copy(names, p.order)
	return names
}

// Len returns the number of members.
func (p *Pool) Len() int {
	return len(p.order)
}

// Unset returns every member to Unknown. Runs inside a hold scope, so an
// auto-committing pool forwards at most one report for the whole sweep.
func (p *Pool) Unset() {
	release := p.Hold()
	defer release()
	for _, name := range p.order {
		p.members[name].Unset()
	}
}

// Hold opens a batched-update scope: while at least one hold is open,
// mutations do not trigger auto-commit. The returned release func must be
// called (typically deferred) on every exit path; calling it more than once
// is a no-op. When the outermost hold is released, an auto-committing pool
// attempts exactly one commit; otherwise the mutations are left pending for
// an explicit Commit.
func (p *Pool) Hold() (release func()) {
	p.holdDepth++
	released := false
	return func() {
		if released {
			return
		}
		released = true
		p.holdDepth--
		if p.holdDepth > 0 || !p.autoCommit {
			return
		}
		if err := p.Commit(); err != nil {
			p.log.Log(p.name, LevelError, "commit on hold release failed: "+err.Error())
		}
	}
}

// Commit coalesces the current member states and forwards the report to the
// sink when it differs from the last committed one. The last committed
// report is refreshed unconditionally, so a second Commit with no
// intervening mutation never reaches the sink. Safe on an empty pool: the
// default Unknown report is forwarded once.
func (p *Pool) Commit() error {
	report := p.Coalesce()
	changed := p.committed == nil || *p.committed != report
	p.committed = &report

	if !changed || p.sink == nil {
		return nil
	}
	if err := p.sink.Update(report); err != nil {
		return fmt.Errorf("status: forward report: %w", err)
	}
	return nil
}

// Coalesce computes the report for the current member states without
// committing or touching the sink.
func (p *Pool) Coalesce() Report {
	return Coalesce(p.Entries(), p.skipUnknown, p.summarizer)
}

// Committed returns the last committed report, and false when no commit has
// run yet.
func (p *Pool) Committed() (Report, bool) {
	if p.committed == nil {
		return Report{}, false
	}
	return *p.committed, true
}

// Entries snapshots every member's coalesce-relevant state in insertion
// order.
func (p *Pool) Entries() []Entry {
	entries := make([]Entry, 0, len(p.order))
	for _, name := range p.order {
		entries = append(entries, p.members[name].entry())
	}
	return entries
}

// memberMutated implements the auto-commit policy: commit after every
// mutation unless a hold scope is open. Commit failures are logged so that
// Set keeps its always-succeeds contract.
func (p *Pool) memberMutated() {
	if !p.autoCommit || p.holdDepth > 0 {
		return
	}
	if err := p.Commit(); err != nil {
		p.log.Log(p.name, LevelError, "auto-commit failed: "+err.Error())
	}
}

// discardLog drops member log lines.
type discardLog struct{}

func (discardLog) Log(tag string, level LogLevel, text string) {}
