package logic

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// debugEnabled gates the programming-error detector described in spec
// §7: comparing a stream's trail length at creation against its trail
// length when it reports Done or is Closed. The check is made once per
// query, on the Cursor's goal stream. It defaults to off so it costs
// nothing normally; hosts writing their own predicates can opt in while
// developing them.
var debugEnabled bool

// SetDebug turns the programming-error detector on or off process-wide.
// When enabled, the query driver logs a warning (via logrus) whenever
// its goal stream's trail length after Close/exhaustion doesn't match
// the trail length at creation; combinators and sub-streams are not
// checked individually. A mismatch is the signature of a
// host predicate that bound something it never rolled back, or rolled
// back more than it bound.
//
// Grounded in the two standalone Prolog engines in the retrieval pack
// that reach for logrus to report exactly this class of engine-internal
// inconsistency (other_examples' yohamta-prolog and amimart-prolog
// engine.go/vm.go, both of which log with
// logrus.WithField(...).Warn(...) rather than panicking).
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// checkTrailBalance logs a warning if a stream did not leave the store
// at the trail length it started at. It is a no-op unless debug mode is
// enabled.
func checkTrailBalance(component string, store *Store, markAtCreation, markNow int) {
	if !debugEnabled {
		return
	}
	if markNow != markAtCreation {
		logrus.WithFields(logrus.Fields{
			"component": component,
			"created":   markAtCreation,
			"observed":  markNow,
		}).Warn("logic: unbalanced bind/rollback detected on stream close")
	}
}

// scopeCounter mints a process-unique id per query scope, purely for
// correlating a scope's open/close trace lines when debug mode is on.
var scopeCounter int64

// logScopeOpen emits a debug-level trace line when a new query scope
// (a Cursor, per spec §4.6's "exactly one query scope is active at a
// time per driver instance") is opened by Run. It is a no-op unless
// debug mode is enabled.
func logScopeOpen(mark int) int64 {
	if !debugEnabled {
		return 0
	}
	id := atomic.AddInt64(&scopeCounter, 1)
	logrus.WithFields(logrus.Fields{
		"scope": id,
		"mark":  mark,
	}).Debug("logic: query scope opened")
	return id
}

// logScopeClose emits a debug-level trace line when a query scope ends,
// whether by exhaustion, explicit Close, or a propagated Type error. It
// is a no-op unless debug mode is enabled.
func logScopeClose(id int64, mark int) {
	if !debugEnabled {
		return
	}
	logrus.WithFields(logrus.Fields{
		"scope": id,
		"mark":  mark,
	}).Debug("logic: query scope closed")
}
