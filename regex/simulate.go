package regex

// Accepts runs a direct NFA simulation over input, following every ε-move
// and every matching character move in lockstep across the whole state set.
// It exists as a test harness (spec's optional C8) to cross-check the
// DFA-based scanner: for any regex and input, Accepts, the subset-constructed
// DFA, and the minimized DFA must all agree.
func Accepts(n *NFA, input string) bool {
	current := EpsilonClosure(map[*State]struct{}{n.Start: {}})
	for _, ch := range input {
		current = EpsilonClosure(Move(current, ch))
		if len(current) == 0 {
			return false
		}
	}
	for s := range current {
		if s.Final {
			return true
		}
	}
	return false
}

// Move returns the set of states reachable from any state in set by a
// single move on ch (ε-transitions are not followed).
func Move(set map[*State]struct{}, ch rune) map[*State]struct{} {
	next := map[*State]struct{}{}
	for s := range set {
		for _, t := range s.Out {
			if t.Symbol == ch {
				next[t.To] = struct{}{}
			}
		}
	}
	return next
}

// EpsilonClosure returns the smallest superset of set closed under
// ε-transitions, adding each state to the frontier only the first time it
// is seen. set is mutated in place and also returned.
func EpsilonClosure(set map[*State]struct{}) map[*State]struct{} {
	stack := make([]*State, 0, len(set))
	for s := range set {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range s.Out {
			if t.Symbol != epsilon {
				continue
			}
			if _, seen := set[t.To]; !seen {
				set[t.To] = struct{}{}
				stack = append(stack, t.To)
			}
		}
	}
	return set
}
