package status

import (
	"fmt"
	"testing"
)

func benchPool(b *testing.B, members int) *Pool {
	b.Helper()
	decls := make([]Decl, members)
	for i := range decls {
		decls[i] = Decl{Name: fmt.Sprintf("member_%d", i)}
	}
	pool, err := NewPool(PoolConfig{
		Sink:     SinkFunc(func(Report) error { return nil }),
		Statuses: decls,
	})
	if err != nil {
		b.Fatalf("NewPool() error = %v", err)
	}
	for i := 0; i < members; i++ {
		name := fmt.Sprintf("member_%d", i)
		sev := Active
		if i == members/2 {
			sev = Blocked
		}
		if err := pool.SetStatus(name, sev, "bench"); err != nil {
			b.Fatalf("SetStatus() error = %v", err)
		}
	}
	return pool
}

// BenchmarkPool_Coalesce measures a full coalesce over a mid-size pool.
func BenchmarkPool_Coalesce(b *testing.B) {
	pool := benchPool(b, 32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pool.Coalesce()
	}
}

// BenchmarkPool_Commit_Unchanged measures the change-detection fast path.
func BenchmarkPool_Commit_Unchanged(b *testing.B) {
	pool := benchPool(b, 32)
	if err := pool.Commit(); err != nil {
		b.Fatalf("Commit() error = %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pool.Commit()
	}
}

// BenchmarkPool_SetStatus measures a single member mutation without
// auto-commit.
func BenchmarkPool_SetStatus(b *testing.B) {
	pool := benchPool(b, 32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pool.SetStatus("member_0", Active, "bench")
	}
}

// BenchmarkSummary_Summarize measures composite summary construction.
func BenchmarkSummary_Summarize(b *testing.B) {
	pool := benchPool(b, 32)
	entries := pool.Entries()
	summarizer := Summary{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = summarizer.Summarize(entries, false)
	}
}

// BenchmarkPool_Snapshot measures JSON snapshot encoding.
func BenchmarkPool_Snapshot(b *testing.B) {
	pool := benchPool(b, 32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pool.Snapshot(); err != nil {
			b.Fatalf("Snapshot() error = %v", err)
		}
	}
}
