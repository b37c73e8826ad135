package logic

// And forms the left-to-right conjunction of goals, per spec §4.4: for
// each solution of the first goal, it constructs and fully enumerates
// the conjunction of the rest before backtracking into the first goal
// for its next solution. With zero goals it is Success; with one it is
// that goal unchanged.
//
// Named And/Or (rather than the teacher's Conj/Disj) to track the
// spec's own external-interface vocabulary (§6: "AND(goal_thunks…),
// OR(goal_thunks…)"); Conde is kept as an alias for Or, exactly as the
// teacher keeps Conde as an alias for Disj, since "conde" is the
// traditional miniKanren/Prolog name for this same OR-of-clauses
// combinator.
func And(goals ...Goal) Goal {
	switch len(goals) {
	case 0:
		return Success
	case 1:
		return goals[0]
	}
	rest := And(goals[1:]...)
	return conj2(goals[0], rest)
}

// conj2 builds the pairwise conjunction of g1 and g2. And folds right
// over this, so an n-ary And(g1,...,gn) becomes conj2(g1, conj2(g2,
// conj2(g3, ...))) — each gi only has its stream constructed once the
// goals to its left have yielded, satisfying the "goal as deferred
// construction" requirement structurally (spec §4.4).
func conj2(g1, g2 Goal) Goal {
	return func(store *Store) Stream {
		return &conjStream{store: store, g2: g2, s1: g1(store)}
	}
}

// conjStream is an explicit two-level backtracking state machine: s1 is
// the live stream for the left goal, s2 the live stream for the right
// goal re-built fresh each time s1 yields a new solution.
type conjStream struct {
	store *Store
	g2    Goal
	s1    Stream
	s2    Stream // nil when no right-hand solution is currently being searched
}

func (c *conjStream) Pull() (bool, error) {
	for {
		if c.s2 != nil {
			ok, err := c.s2.Pull()
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
			c.s2 = nil
		}

		ok, err := c.s1.Pull()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		c.s2 = c.g2(c.store)
	}
}

// Close closes the innermost live sub-stream first, then the outer one,
// guaranteeing full store restoration in LIFO order (spec §4.4).
func (c *conjStream) Close() error {
	if c.s2 != nil {
		if err := c.s2.Close(); err != nil {
			return err
		}
		c.s2 = nil
	}
	return c.s1.Close()
}

// Or yields every solution of g1, then every solution of g2, and so on
// — each goal constructed lazily only when control reaches it, per spec
// §4.5. Between branches the store is at Or's creation-time state,
// because each branch's own exhaustion already restores to where that
// branch started (which is Or's creation mark, since nothing changes
// the store between sibling branches). With zero goals, Or is Failure.
func Or(goals ...Goal) Goal {
	if len(goals) == 0 {
		return Failure
	}
	return func(store *Store) Stream {
		return &orStream{store: store, goals: goals}
	}
}

// Conde is the traditional miniKanren/Prolog name for Or: "conde"
// enumerates alternative clauses exactly as Or does.
func Conde(goals ...Goal) Goal {
	return Or(goals...)
}

type orStream struct {
	store *Store
	goals []Goal
	idx   int
	cur   Stream // nil when the current branch hasn't been started, or has exhausted
}

func (o *orStream) Pull() (bool, error) {
	for {
		if o.cur == nil {
			if o.idx >= len(o.goals) {
				return false, nil
			}
			o.cur = o.goals[o.idx](o.store)
			o.idx++
		}

		ok, err := o.cur.Pull()
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		o.cur = nil
	}
}

func (o *orStream) Close() error {
	if o.cur != nil {
		err := o.cur.Close()
		o.cur = nil
		return err
	}
	return nil
}
