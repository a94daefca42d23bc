// Package store provides the SQLite-backed run ledger.
//
// The ledger is append-only:
//   - Runs: one row per recorded scan, keyed by a UUIDv7
//   - Outcomes: the outcomes of a run, keyed by (run_id, seq)
//
// # Ordering
//
// Outcomes are ordered by seq, the logical clock of the run, never by wall
// time. Runs are ordered by id; UUIDv7 ids sort by creation time.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
