// Package locking provides the per-stage mutual exclusion used by the
// ordering engine. Two backends implement [ports.StageLocker]:
//
//   - Local serializes writers inside one process. It is the default and is
//     sufficient for a single replica over SQLite.
//   - Redis serializes writers across replicas sharing a PostgreSQL store,
//     using SET NX leases released by a compare-and-delete script.
//
// Both acquire stages in board order, so two callers touching the same pair
// of stages always contend on the lower-ranked stage first and cannot
// deadlock.
package locking
