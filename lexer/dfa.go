package lexer

import "lexgram/regex"

// DFAState is one state of a deterministic automaton: a unique id, the set
// of NFA states it represents (its "name", used only during construction
// and minimization to decide equality of two subsets), a transition table
// keyed by input character, a final flag, and — when final — the token id
// of the highest-priority token that can accept here.
type DFAState struct {
	ID      int
	NFA     map[*regex.State]struct{}
	Trans   map[rune]*DFAState
	Final   bool
	TokenID string
}

// DFA is a start state plus every state reachable from it.
type DFA struct {
	Start    *DFAState
	States   []*DFAState
	Alphabet []rune
}

func newDFAState(id int, nfaSet map[*regex.State]struct{}) *DFAState {
	return &DFAState{ID: id, NFA: nfaSet, Trans: map[rune]*DFAState{}}
}

// priorityIndex maps each rule's TokenID to its position in rules — lower
// is higher priority, matching the spec's "priority = position in
// insertion order" rule.
func priorityIndex(rules []TokenRule) map[string]int {
	idx := make(map[string]int, len(rules))
	for i, r := range rules {
		if _, ok := idx[r.ID]; !ok {
			idx[r.ID] = i
		}
	}
	return idx
}

// classify sets Final and, when final, the highest-priority TokenID among
// the NFA states contributing to set.
func classify(d *DFAState, priority map[string]int) {
	bestPriority := -1
	for s := range d.NFA {
		if !s.Final {
			continue
		}
		d.Final = true
		if s.TokenID == "" {
			continue
		}
		p, ok := priority[s.TokenID]
		if !ok {
			p = len(priority)
		}
		if bestPriority == -1 || p < bestPriority {
			bestPriority = p
			d.TokenID = s.TokenID
		}
	}
}
