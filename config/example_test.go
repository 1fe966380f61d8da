package config_test

import (
	"fmt"

	"github.com/jonwraymond/statuspool/config"
	"github.com/jonwraymond/statuspool/status"
)

func ExampleParse() {
	cfg, err := config.Parse([]byte(`
pool:
  name: charm
  summarizer: condensed
statuses:
  - name: workload
  - name: relation_1
    tag: rel1
`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("Pool:", cfg.Pool.Name)
	fmt.Println("Members:", len(cfg.Statuses))
	// Output:
	// Pool: charm
	// Members: 2
}

func ExampleConfig_Build() {
	cfg, _ := config.Parse([]byte(`
pool:
  name: charm
statuses:
  - name: workload
  - name: relation_1
`))

	sink := status.SinkFunc(func(report status.Report) error {
		fmt.Println("committed:", report.Summary)
		return nil
	})

	pool, err := cfg.Build(config.BuildOptions{Sink: sink})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = pool.SetStatus("workload", status.Blocked, "oom")
	_ = pool.Commit()
	// Output:
	// committed: (workload) oom
}

func ExampleConfig_Apply() {
	base, _ := config.Parse([]byte(`statuses: [{name: workload}]`))
	pool, _ := base.Build(config.BuildOptions{})

	reloaded, _ := config.Parse([]byte(`statuses: [{name: workload}, {name: relation_1}]`))
	if err := reloaded.Apply(pool); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("Members:", pool.Len())
	// Output:
	// Members: 2
}
