// Package config loads and watches a pool configuration file (config.yaml).
//
// Top-level types:
//   - Config{Pool, Statuses}: full config tree parsed from YAML
//   - PoolSettings: name, unit, skip_unknown, auto_commit,
//     summarizer (worst|summary|condensed)
//   - StatusDecl: name, tag, priority; priorities are all-or-nothing
//
// Load(path) reads the YAML file, applies defaults (pool name "status",
// worst-only summarizer), then validates names and the priority rule.
// Build constructs a status.Pool from the declarations; Apply reconciles
// a live pool with a reloaded config under a single hold.
//
// Watch(ctx, path, onChange, onError) uses fsnotify to detect file changes
// and calls onChange with the newly parsed Config. It handles the
// rename-then-create pattern used by atomic-save editors (vim, VS Code) by
// re-adding the watch after the event.
package config
