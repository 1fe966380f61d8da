package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "pool:\n  name: before\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg *Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		}, nil)
	}()

	// give the watcher a moment to register
	time.Sleep(100 * time.Millisecond)
	writeConfig(t, path, "pool:\n  name: after\n")

	select {
	case cfg := <-reloaded:
		if cfg.Pool.Name != "after" {
			t.Errorf("reloaded pool.name = %q, want 'after'", cfg.Pool.Name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch() error = %v", err)
	}
}

func TestWatch_KeepsPreviousOnBadReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "pool:\n  name: good\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan *Config, 4)
	errs := make(chan error, 4)
	go func() {
		_ = Watch(ctx, path, func(cfg *Config) {
			reloads <- cfg
		}, func(err error) {
			errs <- err
		})
	}()

	time.Sleep(100 * time.Millisecond)
	writeConfig(t, path, "pool:\n  summarizer: fancy\n")

	select {
	case err := <-errs:
		if err == nil {
			t.Error("expected a reload error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}

	// the bad write must not have produced a config
	select {
	case cfg := <-reloads:
		t.Errorf("onChange called with %+v for invalid config", cfg)
	default:
	}
}

func TestWatch_MissingFile(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"), func(*Config) {}, nil)
	if err == nil {
		t.Fatal("Watch() succeeded on a missing file")
	}
}

func TestWatch_StopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "pool:\n  name: x\n")

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(*Config) {}, nil)
	}()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}
