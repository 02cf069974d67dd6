package regex

import "testing"

func TestInsertConcatenationOperator(t *testing.T) {
	cases := map[string]string{
		"ab":     "a.b",
		"a|b":    "a|b",
		"a*b":    "a*.b",
		"(a)b":   "(a).b",
		"a(b|c)": "a.(b|c)",
		"a?b":    "a?.b",
	}
	for in, want := range cases {
		if got := insertConcatenationOperator(in); got != want {
			t.Errorf("insertConcatenationOperator(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToPostfix(t *testing.T) {
	cases := map[string]string{
		"a(b|c)*d": "abc|*.d.",
		"ab":       "ab.",
		"a|b":      "ab|",
	}
	for in, want := range cases {
		got, err := toPostfix(in)
		if err != nil {
			t.Fatalf("toPostfix(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("toPostfix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToPostfixUnbalancedParens(t *testing.T) {
	for _, in := range []string{"(a", "a)", "((a)"} {
		if _, err := toPostfix(in); err == nil {
			t.Errorf("toPostfix(%q): expected MalformedRegexError, got nil", in)
		}
	}
}

func TestToPostfixRejectsDotAsOperand(t *testing.T) {
	if _, err := toPostfix("a.b"); err == nil {
		t.Fatalf("expected reserved-operand error for literal '.'")
	}
}
