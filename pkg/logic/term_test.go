package logic

import "testing"

func TestVar(t *testing.T) {
	t.Run("fresh variables are unique", func(t *testing.T) {
		a := NewVar("x")
		b := NewVar("x")
		if sameVar(a, b) {
			t.Error("two calls to NewVar should produce distinct handles")
		}
	})

	t.Run("identity is handle, never name", func(t *testing.T) {
		a := NewVar("q")
		b := NewVar("q")
		if a.Handle() == b.Handle() {
			t.Fatal("handles should be globally unique")
		}
		if sameVar(a, a) == false {
			t.Error("a variable should always be the same as itself")
		}
	})

	t.Run("string includes name when present", func(t *testing.T) {
		named := NewVar("x")
		anon := NewVar("")
		if named.String() == anon.String() {
			t.Error("named and anonymous variables should render differently")
		}
	})
}

func TestSeqAndList(t *testing.T) {
	s := List(1, "a", true)
	if len(s) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(s))
	}
	if s[0] != (Atom{Value: 1}) {
		t.Errorf("expected atom 1, got %#v", s[0])
	}

	v := NewVar("x")
	mixed := List(v, 2)
	if mixed[0] != Term(v) {
		t.Errorf("List should use Term values as-is, got %#v", mixed[0])
	}
}
