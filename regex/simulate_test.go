package regex

import "testing"

func TestAcceptsMatchesBuildNFA(t *testing.T) {
	n := compile(t, "(a|b)*abb")
	accept := []string{"abb", "aabb", "babb", "ababb"}
	for _, s := range accept {
		if !Accepts(n, s) {
			t.Errorf("(a|b)*abb should accept %q", s)
		}
	}
	reject := []string{"", "ab", "abbb", "aab"}
	for _, s := range reject {
		if Accepts(n, s) {
			t.Errorf("(a|b)*abb should reject %q", s)
		}
	}
}
