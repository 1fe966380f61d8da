package status

import (
	"encoding/json"
	"errors"
	"net/http"
)

// OverviewResponse is the JSON document served by OverviewHandler.
type OverviewResponse struct {
	Pool      string           `json:"pool"`
	Severity  string           `json:"severity"`
	Message   string           `json:"message,omitempty"`
	Summary   string           `json:"summary,omitempty"`
	Committed bool             `json:"committed"`
	Members   []MemberResponse `json:"members,omitempty"`
}

// MemberResponse is the JSON document for a single member.
type MemberResponse struct {
	Name     string `json:"name"`
	Tag      string `json:"tag,omitempty"`
	Severity string `json:"severity"`
	Message  string `json:"message,omitempty"`
	Priority *int   `json:"priority,omitempty"`
}

// OverviewHandler returns an HTTP handler serving the pool's live coalesced
// report and every member's state. A Blocked pool answers 503 so the
// endpoint doubles as a readiness probe; everything else answers 200.
func OverviewHandler(p *Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := p.Coalesce()
		_, committed := p.Committed()

		response := OverviewResponse{
			Pool:      p.Name(),
			Severity:  report.Severity.String(),
			Message:   report.Message,
			Summary:   report.Summary,
			Committed: committed,
			Members:   make([]MemberResponse, 0, p.Len()),
		}
		for _, name := range p.Members() {
			st, err := p.Get(name)
			if err != nil {
				continue
			}
			response.Members = append(response.Members, memberResponse(st))
		}

		w.Header().Set("Content-Type", "application/json")
		if report.Severity == Blocked {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		_ = json.NewEncoder(w).Encode(response)
	}
}

// MemberHandler returns an HTTP handler serving one member's state,
// selected by the "name" query parameter. Unknown members answer 404.
func MemberHandler(p *Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		st, err := p.Get(name)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			if errors.Is(err, ErrUnknownMember) {
				w.WriteHeader(http.StatusNotFound)
			} else {
				w.WriteHeader(http.StatusInternalServerError)
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if st.Severity() == Blocked {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		_ = json.NewEncoder(w).Encode(memberResponse(st))
	}
}

// RegisterHandlers registers the status handlers on the given mux.
func RegisterHandlers(mux *http.ServeMux, p *Pool) {
	mux.HandleFunc("/status", OverviewHandler(p))
	mux.HandleFunc("/status/member", MemberHandler(p))
}

func memberResponse(st *Status) MemberResponse {
	m := MemberResponse{
		Name:     st.Name(),
		Severity: st.Severity().String(),
		Message:  st.Message(),
	}
	if st.Tag() != st.Name() {
		m.Tag = st.Tag()
	}
	if priority, ok := st.Priority(); ok {
		m.Priority = &priority
	}
	return m
}
