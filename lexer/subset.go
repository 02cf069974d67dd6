package lexer

import (
	"sort"
	"strconv"
	"strings"

	"lexgram/regex"
)

// stateSetKey canonicalizes a set of NFA states into a string keyed by
// their sorted ids, so two subsets containing the same NFA states compare
// equal regardless of discovery order.
func stateSetKey(set map[*regex.State]struct{}) string {
	ids := make([]int, 0, len(set))
	for s := range set {
		ids = append(ids, s.ID)
	}
	sort.Ints(ids)
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

// BuildDFA performs the Subset Constructor (C4): ε-closure and move over a
// combined NFA, with a worklist of pending DFA states. rules supplies the
// token priority order used to resolve which token id a DFA state carries
// when more than one NFA accept state lands in the same subset.
func BuildDFA(nfa *regex.NFA, alphabet []rune, rules []TokenRule) *DFA {
	priority := priorityIndex(rules)

	sortedAlphabet := append([]rune(nil), alphabet...)
	sort.Slice(sortedAlphabet, func(i, j int) bool { return sortedAlphabet[i] < sortedAlphabet[j] })

	initial := regex.EpsilonClosure(map[*regex.State]struct{}{nfa.Start: {}})
	seen := map[string]*DFAState{}

	start := newDFAState(0, initial)
	classify(start, priority)
	seen[stateSetKey(initial)] = start

	states := []*DFAState{start}
	worklist := []*DFAState{start}

	for len(worklist) > 0 {
		d := worklist[0]
		worklist = worklist[1:]

		for _, c := range sortedAlphabet {
			moved := regex.Move(d.NFA, c)
			if len(moved) == 0 {
				continue
			}
			closure := regex.EpsilonClosure(moved)
			key := stateSetKey(closure)

			target, ok := seen[key]
			if !ok {
				target = newDFAState(len(states), closure)
				classify(target, priority)
				seen[key] = target
				states = append(states, target)
				worklist = append(worklist, target)
			}
			d.Trans[c] = target
		}
	}

	return &DFA{Start: start, States: states, Alphabet: sortedAlphabet}
}
