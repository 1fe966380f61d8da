package status

import (
	"encoding/json"
	"fmt"
)

// memberState is the serialized form of one member.
type memberState struct {
	Name     string `json:"name"`
	Tag      string `json:"tag,omitempty"`
	Severity string `json:"severity"`
	Message  string `json:"message,omitempty"`
	Priority *int   `json:"priority,omitempty"`
}

// poolState is the serialized form of a pool's current member states.
type poolState struct {
	Members []memberState `json:"members"`
}

// Snapshot serializes the current member states to JSON, in insertion
// order. The snapshot captures current state only, not history, and does
// not include the last committed report.
func (p *Pool) Snapshot() ([]byte, error) {
	state := poolState{Members: make([]memberState, 0, len(p.order))}
	for _, name := range p.order {
		st := p.members[name]
		m := memberState{
			Name:     st.name,
			Severity: st.severity.String(),
			Message:  st.message,
		}
		if st.tag != st.name {
			m.Tag = st.tag
		}
		if st.ranked {
			priority := st.priority
			m.Priority = &priority
		}
		state.Members = append(state.Members, m)
	}
	return json.Marshal(state)
}

// Restore reapplies a snapshot: declared members present in the snapshot
// get their severity and message back, members the snapshot knows but the
// pool does not are re-created and added dynamically. Restoring never
// forwards to the sink; the next Commit reports the restored state if it
// differs. The snapshot is validated in full before anything is applied:
// invalid severities, re-created names that collide, and priorities
// conflicting with the pool's tie-break mode all fail with no member
// touched.
func (p *Pool) Restore(data []byte) error {
	var state poolState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("status: decode snapshot: %w", err)
	}

	severities := make([]Severity, len(state.Members))
	for i, m := range state.Members {
		sev, err := ParseSeverity(m.Severity)
		if err != nil {
			return fmt.Errorf("status: snapshot member %q: %w", m.Name, err)
		}
		severities[i] = sev
	}

	mode, modeFixed := p.mode, len(p.members) > 0
	adding := make(map[string]bool)
	for _, m := range state.Members {
		if _, ok := p.members[m.Name]; ok {
			continue
		}
		if adding[m.Name] {
			return fmt.Errorf("%w: snapshot member %q", ErrDuplicateName, m.Name)
		}
		adding[m.Name] = true

		memberMode := modeImplicit
		if m.Priority != nil {
			memberMode = modeExplicit
		}
		if !modeFixed {
			mode, modeFixed = memberMode, true
		} else if mode != memberMode {
			return fmt.Errorf("%w: snapshot member %q", ErrMixedPriorityMode, m.Name)
		}
	}

	for i, m := range state.Members {
		st, ok := p.members[m.Name]
		if !ok {
			st = NewStatus(m.Name, StatusConfig{Tag: m.Tag, Priority: m.Priority})
			if err := p.Add(st); err != nil {
				return err
			}
		}
		st.severity = severities[i]
		st.message = m.Message
	}
	return nil
}
