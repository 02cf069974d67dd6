package lexer

import (
	"sort"

	"lexgram/regex"
)

// Pair canonicalizes an unordered pair of DFA state ids with the smaller id
// first, so the distinguishability table can use it as a map key and get
// symmetric lookup for free (Pair(a, b) == Pair(b, a)).
type Pair struct{ Low, High int }

func newPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{Low: a, High: b}
}

// unionFind is a disjoint-set structure over state ids, used by Minimize to
// collapse every undistinguished pair into one partition. find performs
// path compression; union links one root under the other without rank —
// acceptable given the small state counts typical of classroom grammars.
type unionFind struct{ parent []int }

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(x int) int {
	if u.parent[x] != x {
		u.parent[x] = u.find(u.parent[x])
	}
	return u.parent[x]
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

// Minimize performs the DFA Minimizer (C5): table-filling to find every
// distinguishable pair of states, then union-find partitioning of every
// pair that remains undistinguished. rules supplies token priority so a
// merged partition's token id matches the spec's "highest-priority token_id
// among members" rule.
func Minimize(d *DFA, rules []TokenRule) *DFA {
	priority := priorityIndex(rules)
	n := len(d.States)

	byID := make([]*DFAState, n)
	for _, s := range d.States {
		byID[s.ID] = s
	}

	// Two states start out distinguishable when exactly one is final, or
	// when both are final but accept different token ids.
	distinguishable := make(map[Pair]bool)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if byID[i].Final != byID[j].Final || byID[i].TokenID != byID[j].TokenID {
				distinguishable[newPair(i, j)] = true
			}
		}
	}

	for changed := true; changed; {
		changed = false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				p := newPair(i, j)
				if distinguishable[p] {
					continue
				}
				for _, c := range d.Alphabet {
					ti, oki := byID[i].Trans[c]
					tj, okj := byID[j].Trans[c]
					if oki != okj {
						distinguishable[p] = true
						changed = true
						break
					}
					if oki && okj && ti.ID != tj.ID && distinguishable[newPair(ti.ID, tj.ID)] {
						distinguishable[p] = true
						changed = true
						break
					}
				}
			}
		}
	}

	uf := newUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !distinguishable[newPair(i, j)] {
				uf.union(i, j)
			}
		}
	}

	members := map[int][]int{}
	for i := 0; i < n; i++ {
		root := uf.find(i)
		members[root] = append(members[root], i)
	}

	roots := make([]int, 0, len(members))
	for r := range members {
		roots = append(roots, r)
	}
	sort.Slice(roots, func(a, b int) bool {
		return minOf(members[roots[a]]) < minOf(members[roots[b]])
	})

	newOf := make([]*DFAState, n)
	newStates := make([]*DFAState, 0, len(roots))

	for newID, root := range roots {
		group := members[root]
		sort.Ints(group)

		mergedNFA := map[*regex.State]struct{}{}
		final := false
		bestPriority := -1
		bestToken := ""
		for _, oldID := range group {
			old := byID[oldID]
			for ns := range old.NFA {
				mergedNFA[ns] = struct{}{}
			}
			if old.Final {
				final = true
			}
			if old.TokenID == "" {
				continue
			}
			p, ok := priority[old.TokenID]
			if !ok {
				p = len(priority)
			}
			if bestPriority == -1 || p < bestPriority {
				bestPriority = p
				bestToken = old.TokenID
			}
		}

		ns := newDFAState(newID, mergedNFA)
		ns.Final = final
		ns.TokenID = bestToken
		newStates = append(newStates, ns)
		for _, oldID := range group {
			newOf[oldID] = ns
		}
	}

	for i := 0; i < n; i++ {
		rep := newOf[i]
		for c, to := range byID[i].Trans {
			rep.Trans[c] = newOf[to.ID]
		}
	}

	return &DFA{Start: newOf[d.Start.ID], States: newStates, Alphabet: d.Alphabet}
}

func minOf(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}
