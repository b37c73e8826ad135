// Package logic provides a small, embeddable logic-programming engine:
// Prolog/miniKanren-style unification over a term model of atoms, logic
// variables, and compound sequences, with automatic chronological
// backtracking driven by a trail-based binding store.
//
// The engine is a five-layer stack, leaves first:
//
//   - Store: a destructive-with-rollback binding store, with its trail
//     journaling the insertion order of bindings for rollback (store.go).
//   - Term: atoms, variables, and sequences (term.go), plus Walk, which
//     is a Store method (store.go).
//   - Unify: recursive structural unification over walked terms (unify.go).
//   - Stream: a pull-based, resumable solution producer, and the And/Or
//     combinators that compose goals with correct backtracking (stream.go,
//     combinators.go).
//   - Predicates and driver: a minimal standard predicate library
//     (predicates_list.go, predicates_arith.go) and the Run/RunOne/RunAll
//     query driver that snapshots named variables at each solution
//     (driver.go).
//
// The engine is single-threaded and cooperative: all work happens inside
// calls to Stream.Pull, driven by the consumer. There is no internal
// goroutine and no asynchronous I/O. A binding store is not safe for
// concurrent queries; distinct queries need distinct stores.
package logic
