// Package status lets a long-running unit that must report exactly one
// health state decompose it into independently tracked sub-statuses and
// deterministically collapse them back into a single report.
//
// A Status is one named health indicator with its own Severity (Unknown,
// Active, Maintenance, Waiting or Blocked, best to worst) and message. A
// Pool owns an ordered set of them and coalesces them into one Report: the
// worst member wins, ties broken by priority (lower is more important) or by
// insertion order when no member declares a priority. Mixing the two
// tie-break modes in one pool is a configuration error caught at Add time.
//
// # Declaring a pool
//
//	pool, err := status.NewPool(status.PoolConfig{
//	    AutoCommit: true,
//	    Sink:       sink,
//	    Statuses: []status.Decl{
//	        {Name: "workload"},
//	        {Name: "relation_1"},
//	        {Name: "relation_2", Tag: "rel2"},
//	    },
//	})
//
// Members can also be added and removed at runtime, for example one per
// dynamically joining peer:
//
//	peer := status.NewStatus("peer_7")
//	if err := pool.Add(peer); err != nil { ... }
//	peer.Waiting("handshake pending")
//
// # Committing
//
// Commit coalesces the current member states and forwards the report to the
// configured Sink only when it differs from the last committed report. An
// auto-committing pool does this after every mutation; Hold opens a batched
// scope that defers the commit until the outermost release:
//
//	release := pool.Hold()
//	defer release()
//	workload.Blocked("oom")
//	relation1.Active("ok")
//	// exactly one commit on release
//
// The engine is single-threaded: every operation runs to completion on the
// calling goroutine, and a pool must not be mutated concurrently.
package status
