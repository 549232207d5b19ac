// Package random provides the seedable integer sources consumed by the map
// creation strategies.
//
// Goals:
//
//   - Determinism: same seed ⇒ identical draw sequence ⇒ cell-for-cell
//     identical generated maps across runs and platforms.
//   - Encapsulation: strategies depend on the one-method Source interface,
//     never on math/rand directly; tests substitute fixed sequences.
//   - Safety: no time-based seeding hidden anywhere; the process-wide
//     Default exists only for callers that do not care about reproducibility
//     of the default stream identity.
//
// Concurrency:
//
//   - A Source is NOT goroutine-safe. Callers generating maps in parallel
//     must give each generation task its own Source instance.
package random
