// Package main demonstrates basic logic-engine usage patterns.
//
// This example shows how to use the core primitives to solve simple
// relational programming problems.
package main

import (
	"fmt"

	"github.com/go-prolite/prolite/pkg/logic"
)

func main() {
	fmt.Println("=== prolite Examples ===")
	fmt.Println()

	basicUnification()
	multipleChoices()
	listOperations()
	relationExample()
	arithmeticExample()
}

// basicUnification demonstrates simple unification.
func basicUnification() {
	fmt.Println("1. Basic Unification:")

	q := logic.NewVar("q")
	snap, ok, _ := logic.RunOne(logic.Unify(q, logic.NewAtom("hello")), logic.QueryVar{Name: "q", Var: q})
	fmt.Printf("   q = \"hello\" => ok=%v %v\n", ok, snap)

	snap, ok, _ = logic.RunOne(logic.Unify(q, logic.NewAtom(42)), logic.QueryVar{Name: "q", Var: q})
	fmt.Printf("   q = 42 => ok=%v %v\n", ok, snap)
	fmt.Println()
}

// multipleChoices demonstrates disjunction (choice points).
func multipleChoices() {
	fmt.Println("2. Multiple Choices (Or):")

	q := logic.NewVar("q")
	snaps, _ := logic.RunAll(
		logic.Or(
			logic.Unify(q, logic.NewAtom(1)),
			logic.Unify(q, logic.NewAtom(2)),
			logic.Unify(q, logic.NewAtom(3)),
		),
		logic.QueryVar{Name: "q", Var: q},
	)
	fmt.Printf("   q in {1, 2, 3} => %v\n", snaps)

	snaps, _ = logic.RunAll(
		logic.Or(
			logic.Unify(q, logic.NewAtom("hello")),
			logic.Unify(q, logic.NewAtom(42)),
			logic.Unify(q, logic.NewAtom(true)),
		),
		logic.QueryVar{Name: "q", Var: q},
	)
	fmt.Printf("   q in {\"hello\", 42, true} => %v\n", snaps)
	fmt.Println()
}

// listOperations demonstrates sequence construction and manipulation.
func listOperations() {
	fmt.Println("3. List Operations:")

	list123 := logic.List(1, 2, 3)
	q := logic.NewVar("q")
	snap, ok, _ := logic.RunOne(logic.Unify(q, list123), logic.QueryVar{Name: "q", Var: q})
	fmt.Printf("   q = [1 2 3] => ok=%v %v\n", ok, snap)

	list12 := logic.List(1, 2)
	list34 := logic.List(3, 4)
	snap, ok, _ = logic.RunOne(logic.Append(list12, list34, q), logic.QueryVar{Name: "q", Var: q})
	fmt.Printf("   append([1 2], [3 4]) => ok=%v %v\n", ok, snap)

	list1234 := logic.List(1, 2, 3, 4)
	snap, ok, _ = logic.RunOne(logic.Append(q, list34, list1234), logic.QueryVar{Name: "q", Var: q})
	fmt.Printf("   What + [3 4] = [1 2 3 4]? => ok=%v %v\n", ok, snap)
	fmt.Println()
}

// relationExample demonstrates a more complex relational program.
func relationExample() {
	fmt.Println("4. Relational Programming:")

	likes := func(person, food logic.Term) logic.Goal {
		return logic.Or(
			logic.And(
				logic.Unify(person, logic.NewAtom("alice")),
				logic.Unify(food, logic.NewAtom("pizza")),
			),
			logic.And(
				logic.Unify(person, logic.NewAtom("bob")),
				logic.Unify(food, logic.NewAtom("burgers")),
			),
			logic.And(
				logic.Unify(person, logic.NewAtom("alice")),
				logic.Unify(food, logic.NewAtom("salad")),
			),
		)
	}

	q := logic.NewVar("q")
	snaps, _ := logic.RunAll(likes(logic.NewAtom("alice"), q), logic.QueryVar{Name: "q", Var: q})
	fmt.Printf("   What does alice like? => %v\n", snaps)

	snaps, _ = logic.RunAll(likes(q, logic.NewAtom("pizza")), logic.QueryVar{Name: "q", Var: q})
	fmt.Printf("   Who likes pizza? => %v\n", snaps)

	person := logic.NewVar("person")
	food := logic.NewVar("food")
	snaps, _ = logic.RunAll(
		likes(person, food),
		logic.QueryVar{Name: "person", Var: person},
		logic.QueryVar{Name: "food", Var: food},
	)
	fmt.Printf("   All person-food pairs => %v\n", snaps)
	fmt.Println()
}

// arithmeticExample demonstrates the numeric predicate library,
// including Between's lazy, multi-mode enumeration.
func arithmeticExample() {
	fmt.Println("5. Arithmetic:")

	z := logic.NewVar("z")
	snap, ok, _ := logic.RunOne(logic.Plus(logic.NewAtom(2), logic.NewAtom(3), z), logic.QueryVar{Name: "z", Var: z})
	fmt.Printf("   2 + 3 = z => ok=%v %v\n", ok, snap)

	x := logic.NewVar("x")
	snaps, _ := logic.RunAll(logic.Between(logic.NewAtom(1), logic.NewAtom(5), x), logic.QueryVar{Name: "x", Var: x})
	fmt.Printf("   x in [1, 5] => %v\n", snaps)
	fmt.Println()
}
