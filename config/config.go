package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonwraymond/statuspool/status"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultPoolName   = "status"
	DefaultSummarizer = "worst"
)

// Config is the top-level pool configuration.
// Fields map 1:1 to config.example.yaml.
type Config struct {
	Pool     PoolSettings `yaml:"pool"`
	Statuses []StatusDecl `yaml:"statuses"`
}

// PoolSettings holds pool-wide behavior.
type PoolSettings struct {
	// Name identifies the pool in reports, logs, and telemetry.
	Name string `yaml:"name"`

	// Unit is the owning unit or instance, used for telemetry labels.
	Unit string `yaml:"unit"`

	// SkipUnknown drops unknown members from coalescing and summaries.
	SkipUnknown bool `yaml:"skip_unknown"`

	// AutoCommit commits after every member mutation outside a hold.
	AutoCommit bool `yaml:"auto_commit"`

	// Summarizer selects the summary style: worst | summary | condensed.
	Summarizer string `yaml:"summarizer"`
}

// StatusDecl declares one pool member.
type StatusDecl struct {
	// Name is the unique member name within the pool.
	Name string `yaml:"name"`

	// Tag is the short label used in summaries; defaults to Name.
	Tag string `yaml:"tag"`

	// Priority ranks the member for tie-breaking; lower is more
	// important. Either every member declares one or none does.
	Priority *int `yaml:"priority"`
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with sensible defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML config bytes, applying defaults and validation.
func Parse(data []byte) (*Config, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Pool: PoolSettings{
			Name:       DefaultPoolName,
			Summarizer: DefaultSummarizer,
		},
	}
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	switch cfg.Pool.Summarizer {
	case "worst", "summary", "condensed", "":
	default:
		return fmt.Errorf("pool.summarizer: unknown style %q", cfg.Pool.Summarizer)
	}

	seen := make(map[string]bool, len(cfg.Statuses))
	ranked := 0
	for i, decl := range cfg.Statuses {
		if decl.Name == "" {
			return fmt.Errorf("statuses[%d]: name is required", i)
		}
		if seen[decl.Name] {
			return fmt.Errorf("statuses[%d]: duplicate name %q", i, decl.Name)
		}
		seen[decl.Name] = true
		if decl.Priority != nil {
			ranked++
		}
	}
	// priorities are all-or-nothing so the pool's tie-break mode is unambiguous
	if ranked != 0 && ranked != len(cfg.Statuses) {
		return fmt.Errorf("statuses: either every member declares a priority or none does")
	}
	return nil
}

// Summarizer returns the status.Summarizer selected by the config.
func (c *Config) Summarizer() status.Summarizer {
	switch c.Pool.Summarizer {
	case "summary":
		return status.Summary{}
	case "condensed":
		return status.Condensed{}
	default:
		return status.WorstOnly{}
	}
}

// BuildOptions carries the runtime collaborators a config file cannot name.
type BuildOptions struct {
	// Sink receives committed reports. Optional.
	Sink status.Sink

	// Log receives per-member log lines. Optional.
	Log status.LogSink
}

// Build constructs a pool from the configuration.
func (c *Config) Build(opts BuildOptions) (*status.Pool, error) {
	decls := make([]status.Decl, len(c.Statuses))
	for i, d := range c.Statuses {
		decls[i] = status.Decl{Name: d.Name, Tag: d.Tag, Priority: d.Priority}
	}

	return status.NewPool(status.PoolConfig{
		Name:        c.Pool.Name,
		SkipUnknown: c.Pool.SkipUnknown,
		AutoCommit:  c.Pool.AutoCommit,
		Summarizer:  c.Summarizer(),
		Sink:        opts.Sink,
		Log:         opts.Log,
		Statuses:    decls,
	})
}

// Apply reconciles a live pool with the declared membership: members
// named in the config but absent from the pool are added, keeping their
// declared tag and priority. Existing members are left untouched, and
// members the config no longer names survive so their state is not lost.
// All additions happen under one hold, so at most one commit results.
func (c *Config) Apply(pool *status.Pool) error {
	release := pool.Hold()
	defer release()

	for _, d := range c.Statuses {
		if _, err := pool.Get(d.Name); err == nil {
			continue
		}
		st := status.NewStatus(d.Name, status.StatusConfig{Tag: d.Tag, Priority: d.Priority})
		if err := pool.Add(st); err != nil {
			return fmt.Errorf("config: apply member %q: %w", d.Name, err)
		}
	}
	return nil
}
