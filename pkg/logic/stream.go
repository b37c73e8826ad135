package logic

// Stream is a pull-based, resumable producer of solutions. It realizes
// the contract of spec §4.3 without coroutines: each Stream is an
// explicit state machine with its own program counter, advanced one
// step per Pull call, exactly as spec §9's design notes describe ("any
// implementation language can realize the same contract with explicit
// state machines"). This is a deliberate departure from the teacher's
// goroutine-and-channel Stream/ResultStream (stream.go, core.go in the
// teacher tree): this engine's concurrency model is single-threaded and
// cooperative by spec (§5), and "parallel search" is an explicit
// Non-goal.
type Stream interface {
	// Pull advances the stream by one solution. A (true, nil) return
	// means a solution was found and the store currently reflects it.
	// A (false, nil) return means the stream is exhausted and has
	// already restored the store to its creation-time state. A non-nil
	// error is a fatal Type error (spec §7): the stream that raised it
	// has rolled back its own bindings, but bindings made by enclosing
	// streams (e.g. the left side of an And) stay in place until the
	// caller calls Close, as the query driver does.
	Pull() (bool, error)

	// Close abandons the stream without pulling further, restoring the
	// store to exactly the state it was in when the stream was created.
	// Close is idempotent.
	Close() error
}

// Goal constructs a Stream against the current state of store. Because
// Goal is itself a function rather than a prebuilt Stream, passing a
// Goal value already satisfies spec §4.4's "deferred construction"
// requirement for And's second-and-later arguments: calling it is what
// triggers its search, and it sees whatever bindings are in store at
// that moment.
type Goal func(store *Store) Stream

// emptyStream is Done on the first Pull and makes no bindings, so
// Close is always a no-op. Used for goals that fail immediately
// (Failure, Or with no branches, and mode/shape failures in builtins
// that never got as far as binding anything).
type emptyStream struct{}

func (emptyStream) Pull() (bool, error) { return false, nil }
func (emptyStream) Close() error        { return nil }

// unitStream yields exactly once with no bindings of its own, then is
// Done. Used for goals that trivially succeed (Success, And with no
// goals).
type unitStream struct {
	pulled bool
}

func (u *unitStream) Pull() (bool, error) {
	if !u.pulled {
		u.pulled = true
		return true, nil
	}
	return false, nil
}

func (u *unitStream) Close() error { return nil }

// Success is a goal that always succeeds without binding anything.
var Success Goal = func(store *Store) Stream {
	return &unitStream{}
}

// Failure is a goal that never succeeds.
var Failure Goal = func(store *Store) Stream {
	return emptyStream{}
}

// detStream wraps an attempt that makes at most one binding decision —
// the shape shared by Unify and the single-solution arithmetic/shape
// builtins (Plus, Length's verify mode, and so on). attempt is called
// lazily on the first Pull, not at stream-construction time, so that
// even deterministic goals only do their work when the consumer
// actually asks for a solution.
type detStream struct {
	store   *Store
	attempt func() (bool, error)
	state   detState
	mark    int
}

type detState int

const (
	detPending detState = iota
	detYielded
	detDone
)

func newDetStream(store *Store, attempt func() (bool, error)) *detStream {
	return &detStream{store: store, attempt: attempt}
}

func (d *detStream) Pull() (bool, error) {
	switch d.state {
	case detPending:
		d.mark = d.store.Mark()
		ok, err := d.attempt()
		if err != nil {
			d.store.Rollback(d.mark)
			d.state = detDone
			return false, err
		}
		if ok {
			d.state = detYielded
			return true, nil
		}
		d.store.Rollback(d.mark)
		d.state = detDone
		return false, nil
	case detYielded:
		d.store.Rollback(d.mark)
		d.state = detDone
		return false, nil
	default:
		return false, nil
	}
}

func (d *detStream) Close() error {
	if d.state == detYielded {
		d.store.Rollback(d.mark)
	}
	d.state = detDone
	return nil
}
