package logic

// QueryVar names a logic variable for the query driver to report in
// every solution snapshot. Query variables are supplied as an ordered
// slice rather than a map because spec §6 requires the snapshot format
// to be order-preserving with respect to the names given to the
// driver — a Go map has no such guarantee.
type QueryVar struct {
	Name string
	Var  *Var
}

// Binding is one named value in a solution Snapshot.
type Binding struct {
	Name  string
	Value any
}

// Snapshot is an immutable, order-preserving mapping from query names
// to the fully dereferenced value of each variable at one yielded
// solution. Each Value is either a host atomic value, a nested []any
// (mirroring a Seq's structure), or a *Var — the sentinel denoting that
// the variable was still unbound at that solution (spec §6).
type Snapshot []Binding

// Get looks up a binding by name.
func (s Snapshot) Get(name string) (any, bool) {
	for _, b := range s {
		if b.Name == name {
			return b.Value, true
		}
	}
	return nil, false
}

func snapshotValue(store *Store, t Term) any {
	switch w := store.Walk(t).(type) {
	case *Var:
		return w
	case Atom:
		return w.Value
	case Seq:
		out := make([]any, len(w))
		for i, elem := range w {
			out[i] = snapshotValue(store, elem)
		}
		return out
	default:
		return w
	}
}

// Cursor is one active query scope: a goal stream paired with the
// Store it searches, generalizing the teacher's single-variable
// Run/RunStar (primitives.go) to named, multi-variable queries. Per
// spec §4.6, exactly one query scope is active per driver instance —
// a Cursor owns its Store for its entire lifetime and nothing else may
// touch it concurrently (spec §5's reentrancy rule).
type Cursor struct {
	store       *Store
	stream      Stream
	vars        []QueryVar
	createdMark int
	closed      bool
	scopeID     int64
}

// Run starts a new query scope for goal, beginning from an empty
// Store, and returns a Cursor the consumer can pull solutions from.
// When debug mode is enabled (SetDebug), it logs a debug-level trace
// line for the scope's open here and its close in finish.
func Run(goal Goal, vars ...QueryVar) *Cursor {
	store := NewStore()
	mark := store.Mark()
	scopeID := logScopeOpen(mark)
	stream := goal(store)
	return &Cursor{store: store, stream: stream, vars: vars, createdMark: mark, scopeID: scopeID}
}

// Next pulls the next solution. A (snapshot, true, nil) return means a
// solution was found; (nil, false, nil) means the goal stream is
// exhausted and the store has already been fully restored. A non-nil
// error is a fatal Type error (spec §7): Next closes the stream —
// restoring every binding it made — before returning, and the Cursor is
// now closed too.
func (c *Cursor) Next() (Snapshot, bool, error) {
	if c.closed {
		return nil, false, nil
	}

	ok, err := c.stream.Pull()
	if err != nil {
		if closeErr := c.stream.Close(); err == nil {
			err = closeErr
		}
		c.finish()
		return nil, false, err
	}
	if !ok {
		c.finish()
		return nil, false, nil
	}

	snap := make(Snapshot, len(c.vars))
	for i, qv := range c.vars {
		snap[i] = Binding{Name: qv.Name, Value: snapshotValue(c.store, qv.Var)}
	}
	return snap, true, nil
}

// Close abandons the query before exhaustion, restoring the store to
// empty. Per spec §4.6, this is what the driver does on consumer early
// termination. Close is idempotent.
func (c *Cursor) Close() error {
	if c.closed {
		return nil
	}
	err := c.stream.Close()
	c.finish()
	return err
}

func (c *Cursor) finish() {
	if c.closed {
		return
	}
	c.closed = true
	checkTrailBalance("Cursor", c.store, c.createdMark, c.store.Mark())
	logScopeClose(c.scopeID, c.store.Mark())
}

// RunOne returns the first solution, or (nil, false, nil) if the goal
// has none. The goal stream is always closed afterward (whether or not
// a solution was found), restoring the store.
func RunOne(goal Goal, vars ...QueryVar) (Snapshot, bool, error) {
	c := Run(goal, vars...)
	snap, ok, err := c.Next()
	if closeErr := c.Close(); err == nil {
		err = closeErr
	}
	return snap, ok, err
}

// RunAll materializes every solution into an ordered slice. If the
// goal has an unbounded number of solutions this will not return —
// callers that need a bound should pull a Cursor directly instead.
func RunAll(goal Goal, vars ...QueryVar) ([]Snapshot, error) {
	c := Run(goal, vars...)
	var results []Snapshot
	for {
		snap, ok, err := c.Next()
		if err != nil {
			return results, err
		}
		if !ok {
			return results, nil
		}
		results = append(results, snap)
	}
}
