package status

import (
	"errors"
	"testing"
)

func TestNewStatus_Defaults(t *testing.T) {
	st := NewStatus("workload")

	if st.Name() != "workload" {
		t.Errorf("Name() = %q, want 'workload'", st.Name())
	}
	if st.Tag() != "workload" {
		t.Errorf("Tag() = %q, want tag defaulted to name", st.Tag())
	}
	if st.Severity() != Unknown {
		t.Errorf("Severity() = %v, want Unknown", st.Severity())
	}
	if _, ranked := st.Priority(); ranked {
		t.Error("new status should not carry an explicit priority")
	}
}

func TestNewStatus_Config(t *testing.T) {
	st := NewStatus("relation_2", StatusConfig{Tag: "rel2", Priority: Rank(7)})

	if st.Tag() != "rel2" {
		t.Errorf("Tag() = %q, want 'rel2'", st.Tag())
	}
	priority, ranked := st.Priority()
	if !ranked || priority != 7 {
		t.Errorf("Priority() = %d, %v, want 7, true", priority, ranked)
	}
}

func TestStatus_Set(t *testing.T) {
	st := NewStatus("workload")

	if err := st.Set(Blocked, "oom"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if st.Severity() != Blocked {
		t.Errorf("Severity() = %v, want Blocked", st.Severity())
	}
	if st.Message() != "oom" {
		t.Errorf("Message() = %q, want 'oom'", st.Message())
	}
}

func TestStatus_SetInvalidSeverity(t *testing.T) {
	st := NewStatus("workload")
	st.Active("ok")

	err := st.Set(Severity(42), "bogus")
	if !errors.Is(err, ErrInvalidSeverity) {
		t.Fatalf("Set() error = %v, want ErrInvalidSeverity", err)
	}

	// failed set is a no-op
	if st.Severity() != Active || st.Message() != "ok" {
		t.Errorf("status changed after failed Set: %v %q", st.Severity(), st.Message())
	}
}

func TestStatus_Unset(t *testing.T) {
	st := NewStatus("workload")
	st.Blocked("oom")

	st.Unset()

	if st.Severity() != Unknown {
		t.Errorf("Severity() after Unset = %v, want Unknown", st.Severity())
	}
	if st.Message() != "" {
		t.Errorf("Message() after Unset = %q, want empty", st.Message())
	}
}

func TestStatus_ConvenienceSetters(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Status)
		want Severity
	}{
		{"active", func(s *Status) { s.Active("m") }, Active},
		{"maintenance", func(s *Status) { s.Maintenance("m") }, Maintenance},
		{"waiting", func(s *Status) { s.Waiting("m") }, Waiting},
		{"blocked", func(s *Status) { s.Blocked("m") }, Blocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewStatus("x")
			tt.set(st)
			if st.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", st.Severity(), tt.want)
			}
			if st.Message() != "m" {
				t.Errorf("Message() = %q, want 'm'", st.Message())
			}
		})
	}
}

type logLine struct {
	tag   string
	level LogLevel
	text  string
}

type recordingLog struct {
	lines []logLine
}

func (l *recordingLog) Log(tag string, level LogLevel, text string) {
	l.lines = append(l.lines, logLine{tag, level, text})
}

func TestStatus_LogForwarding(t *testing.T) {
	log := &recordingLog{}
	pool, err := NewPool(PoolConfig{
		Log:      log,
		Statuses: []Decl{{Name: "relation_2", Tag: "rel2"}},
	})
	if err != nil {
		t.Fatalf("NewPool() error = %v", err)
	}

	st, err := pool.Get("relation_2")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	st.Info("joined")
	st.Warning("slow")
	st.Error("refused")

	want := []logLine{
		{"rel2", LevelInfo, "joined"},
		{"rel2", LevelWarning, "slow"},
		{"rel2", LevelError, "refused"},
	}
	if len(log.lines) != len(want) {
		t.Fatalf("got %d log lines, want %d", len(log.lines), len(want))
	}
	for i, line := range want {
		if log.lines[i] != line {
			t.Errorf("line %d = %+v, want %+v", i, log.lines[i], line)
		}
	}

	// logging never touches coalesce-relevant state
	if st.Severity() != Unknown || st.Message() != "" {
		t.Error("log forwarding mutated status state")
	}
}

func TestStatus_LogDetached(t *testing.T) {
	st := NewStatus("loner")

	// must not panic
	st.Info("nobody listening")
	st.Error("still nobody")
}
