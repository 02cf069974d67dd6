package grammar

import (
	"sort"
	"testing"
)

func symbolNames(syms []Symbol) []string {
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.Name
	}
	sort.Strings(names)
	return names
}

func assertSymbolSet(t *testing.T, label string, got []Symbol, want ...string) {
	t.Helper()
	gotNames := symbolNames(got)
	sort.Strings(want)
	if len(gotNames) != len(want) {
		t.Errorf("%s = %v, want %v", label, gotNames, want)
		return
	}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Errorf("%s = %v, want %v", label, gotNames, want)
			return
		}
	}
}

// exprGrammar builds spec.md §8 scenario 5's classic expression grammar:
//
//	E  -> T E'
//	E' -> + T E' | ε
//	T  -> F T'
//	T' -> * F T' | ε
//	F  -> ( E ) | id
func exprGrammar(t *testing.T) *Grammar {
	t.Helper()
	E, Ep, T, Tp, F := NT("E"), NT("E'"), NT("T"), NT("T'"), NT("F")
	plus, star, lparen, rparen, id := T_("+"), T_("*"), T_("("), T_(")"), T_("id")

	productions := []Production{
		{Left: E, Right: []Symbol{T, Ep}},
		{Left: Ep, Right: []Symbol{plus, T, Ep}},
		{Left: Ep, Right: []Symbol{Epsilon}},
		{Left: T, Right: []Symbol{F, Tp}},
		{Left: Tp, Right: []Symbol{star, F, Tp}},
		{Left: Tp, Right: []Symbol{Epsilon}},
		{Left: F, Right: []Symbol{lparen, E, rparen}},
		{Left: F, Right: []Symbol{id}},
	}
	g, err := New(productions,
		[]Symbol{plus, star, lparen, rparen, id},
		[]Symbol{E, Ep, T, Tp, F},
		E,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

// T_ exists only so exprGrammar's terminal names ("+", "*", "(", ")") don't
// collide visually with the T non-terminal symbol in the same scope.
func T_(name string) Symbol { return T(name) }

func TestFirstFollowExpressionGrammar(t *testing.T) {
	g := exprGrammar(t)
	a := NewAnalyzer(g)

	E, Ep, T, Tp, F := NT("E"), NT("E'"), NT("T"), NT("T'"), NT("F")

	assertSymbolSet(t, "FIRST(F)", a.First(F), "(", "id")
	assertSymbolSet(t, "FIRST(T)", a.First(T), "(", "id")
	assertSymbolSet(t, "FIRST(E)", a.First(E), "(", "id")
	assertSymbolSet(t, "FIRST(E')", a.First(Ep), "+", "ε")
	assertSymbolSet(t, "FIRST(T')", a.First(Tp), "*", "ε")

	mustFollow := func(sym Symbol) []Symbol {
		f, err := a.Follow(sym)
		if err != nil {
			t.Fatalf("Follow(%s): %v", sym, err)
		}
		return f
	}

	assertSymbolSet(t, "FOLLOW(E)", mustFollow(E), ")", "$")
	assertSymbolSet(t, "FOLLOW(E')", mustFollow(Ep), ")", "$")
	assertSymbolSet(t, "FOLLOW(T)", mustFollow(T), "+", ")", "$")
	assertSymbolSet(t, "FOLLOW(T')", mustFollow(Tp), "+", ")", "$")
	assertSymbolSet(t, "FOLLOW(F)", mustFollow(F), "*", "+", ")", "$")
}

// TestFirstFollowNullableChain covers spec.md §8 scenario 6: a nullable
// non-terminal (B -> b | ε) lets FIRST(a) into FIRST(A) for A -> B a,
// while ε itself does not reach FIRST(A).
func TestFirstFollowNullableChain(t *testing.T) {
	A, B, a, b := NT("A"), NT("B"), T("a"), T("b")
	g, err := New(
		[]Production{
			{Left: A, Right: []Symbol{B, a}},
			{Left: B, Right: []Symbol{b}},
			{Left: B, Right: []Symbol{Epsilon}},
		},
		[]Symbol{a, b},
		[]Symbol{A, B},
		A,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	an := NewAnalyzer(g)

	assertSymbolSet(t, "FIRST(B)", an.First(B), "b", "ε")
	assertSymbolSet(t, "FIRST(A)", an.First(A), "b", "a")

	follow, err := an.Follow(B)
	if err != nil {
		t.Fatalf("Follow(B): %v", err)
	}
	assertSymbolSet(t, "FOLLOW(B)", follow, "a")

	follow, err = an.Follow(A)
	if err != nil {
		t.Fatalf("Follow(A): %v", err)
	}
	assertSymbolSet(t, "FOLLOW(A)", follow, "$")
}

func TestFollowRejectsTerminal(t *testing.T) {
	A := NT("A")
	g, err := New([]Production{{Left: A, Right: []Symbol{Epsilon}}}, nil, []Symbol{A}, A)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	an := NewAnalyzer(g)
	if _, err := an.Follow(T("a")); err == nil {
		t.Error("Follow(terminal) should return an error")
	}
}
