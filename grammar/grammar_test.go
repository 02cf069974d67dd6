package grammar

import "testing"

func TestNewRejectsUndeclaredStart(t *testing.T) {
	a := NT("A")
	_, err := New(nil, nil, nil, a)
	if _, ok := err.(*GrammarError); !ok {
		t.Fatalf("expected GrammarError, got %v", err)
	}
}

func TestNewRejectsNonNonTerminalLeft(t *testing.T) {
	a, b := NT("A"), T("b")
	_, err := New(
		[]Production{{Left: b, Right: []Symbol{a}}},
		[]Symbol{b},
		[]Symbol{a},
		a,
	)
	if _, ok := err.(*GrammarError); !ok {
		t.Fatalf("expected GrammarError for non-non-terminal left side, got %v", err)
	}
}

func TestNewRejectsUndeclaredSymbolInRight(t *testing.T) {
	a := NT("A")
	undeclared := T("x")
	_, err := New(
		[]Production{{Left: a, Right: []Symbol{undeclared}}},
		nil,
		[]Symbol{a},
		a,
	)
	if _, ok := err.(*GrammarError); !ok {
		t.Fatalf("expected GrammarError for undeclared right-hand symbol, got %v", err)
	}
}

func TestNewAcceptsExplicitEpsilonProduction(t *testing.T) {
	a := NT("A")
	_, err := New(
		[]Production{{Left: a, Right: []Symbol{Epsilon}}},
		nil,
		[]Symbol{a},
		a,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
}

func TestTerminalNamesSorted(t *testing.T) {
	a, x, y, z := NT("A"), T("x"), T("y"), T("z")
	g, err := New(
		[]Production{{Left: a, Right: []Symbol{z, x, y}}},
		[]Symbol{z, x, y},
		[]Symbol{a},
		a,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := g.TerminalNames()
	want := []string{"x", "y", "z"}
	if len(got) != len(want) {
		t.Fatalf("TerminalNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TerminalNames() = %v, want %v", got, want)
		}
	}
}

func TestGrammarPreservesProductionDeclarationOrder(t *testing.T) {
	a, b := NT("A"), NT("B")
	first := Production{Left: a, Right: []Symbol{b}}
	second := Production{Left: a, Right: []Symbol{Epsilon}}
	g, err := New([]Production{first, second}, nil, []Symbol{a, b}, a)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(g.Productions) != 2 || g.Productions[0].Right[0] != b || g.Productions[1].Right[0] != Epsilon {
		t.Errorf("g.Productions = %+v, want [A->B, A->ε] in declaration order", g.Productions)
	}
}
