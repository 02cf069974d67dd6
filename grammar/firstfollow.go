package grammar

import "github.com/emirpasic/gods/sets/treeset"

// symbolComparator orders symbols terminal-before-non-terminal, then
// lexically by name, giving FIRST/FOLLOW sets a deterministic, sorted
// iteration order the way npillmayer-gorgo's lr/tables.go relies on
// treeset's ordering for stable LR table output.
func symbolComparator(a, b interface{}) int {
	sa, sb := a.(Symbol), b.(Symbol)
	if sa.Kind != sb.Kind {
		return int(sa.Kind) - int(sb.Kind)
	}
	switch {
	case sa.Name < sb.Name:
		return -1
	case sa.Name > sb.Name:
		return 1
	default:
		return 0
	}
}

func newSymbolSet(syms ...Symbol) *treeset.Set {
	s := treeset.NewWith(symbolComparator)
	for _, sym := range syms {
		s.Add(sym)
	}
	return s
}

// Analyzer computes and caches FIRST and FOLLOW over a Grammar. Each is
// computed once, lazily, the first time it is needed (FOLLOW also forces
// FIRST), and reused for
// the Analyzer's lifetime — the grammar is immutable after construction, so
// there is nothing to invalidate the cache.
type Analyzer struct {
	g      *Grammar
	first  map[Symbol]*treeset.Set
	follow map[Symbol]*treeset.Set
}

// NewAnalyzer returns an Analyzer over g. FIRST and FOLLOW are not computed
// until first requested.
func NewAnalyzer(g *Grammar) *Analyzer { return &Analyzer{g: g} }

// First returns FIRST(sym): the sorted set of terminals (and possibly
// Epsilon) that can begin some string derivable from sym.
func (a *Analyzer) First(sym Symbol) []Symbol {
	a.ensureFirst()
	return setToSlice(a.first[sym])
}

// Follow returns FOLLOW(nt): the sorted set of terminals (and possibly
// EndOfInput) that can immediately follow nt in some sentential form. It is
// only defined for non-terminals.
func (a *Analyzer) Follow(nt Symbol) ([]Symbol, error) {
	if nt.Kind != NonTerminal {
		return nil, invalid("FOLLOW is only defined for non-terminals, got %q", nt.Name)
	}
	a.ensureFollow()
	return setToSlice(a.follow[nt]), nil
}

func (a *Analyzer) ensureFirst() {
	if a.first != nil {
		return
	}
	a.first = map[Symbol]*treeset.Set{
		Epsilon:    newSymbolSet(Epsilon),
		EndOfInput: newSymbolSet(EndOfInput),
	}
	for t := range a.g.Terminals {
		a.first[t] = newSymbolSet(t)
	}
	for nt := range a.g.NonTerminals {
		a.first[nt] = newSymbolSet()
	}

	for changed, prev := true, -1; changed; {
		for _, p := range a.g.Productions {
			rhsFirst := a.firstOfSequence(p.Right)
			for _, v := range rhsFirst.Values() {
				a.first[p.Left].Add(v)
			}
		}
		total := totalSize(a.first)
		changed = total != prev
		prev = total
	}
}

func (a *Analyzer) ensureFollow() {
	if a.follow != nil {
		return
	}
	a.ensureFirst()

	a.follow = map[Symbol]*treeset.Set{}
	for nt := range a.g.NonTerminals {
		a.follow[nt] = newSymbolSet()
	}
	a.follow[a.g.Start].Add(EndOfInput)

	for changed, prev := true, -1; changed; {
		for _, p := range a.g.Productions {
			for i, sym := range p.Right {
				if sym.IsTerminal() {
					continue
				}
				trailer := a.firstOfSequence(p.Right[i+1:])
				for _, v := range trailer.Values() {
					if v.(Symbol) != Epsilon {
						a.follow[sym].Add(v)
					}
				}
				if trailer.Contains(Epsilon) || i == len(p.Right)-1 {
					for _, v := range a.follow[p.Left].Values() {
						a.follow[sym].Add(v)
					}
				}
			}
		}
		total := totalSize(a.follow)
		changed = total != prev
		prev = total
	}
}

// firstOfSequence computes FIRST(X1 X2 ... Xn) over the already-known (or
// still-converging) per-symbol FIRST sets: walk the sequence, accumulating
// FIRST(Xi)\{ε} and stopping at the first symbol whose FIRST set does not
// contain ε; if every symbol's FIRST set contains ε (including the
// zero-symbol empty sequence), ε is added. This single walk serves both
// FIRST(A)'s own production right-hand sides and FOLLOW's trailers.
func (a *Analyzer) firstOfSequence(syms []Symbol) *treeset.Set {
	result := newSymbolSet()
	if len(syms) == 0 {
		result.Add(Epsilon)
		return result
	}
	allNullable := true
	for _, s := range syms {
		sf := a.first[s]
		for _, v := range sf.Values() {
			if v.(Symbol) != Epsilon {
				result.Add(v)
			}
		}
		if !sf.Contains(Epsilon) {
			allNullable = false
			break
		}
	}
	if allNullable {
		result.Add(Epsilon)
	}
	return result
}

// totalSize sums the size of every set in m. Comparing this sum across a
// full fixed-point pass, rather than toggling a per-insertion boolean flag,
// is how this implementation avoids the bug the spec calls out: a flag
// assigned (rather than OR-accumulated) per insertion can lose earlier
// changes within the same pass. Summing set sizes can only grow monotonically
// with real insertions, so an unchanged total is exactly the fixed point.
func totalSize(m map[Symbol]*treeset.Set) int {
	n := 0
	for _, s := range m {
		n += s.Size()
	}
	return n
}

func setToSlice(s *treeset.Set) []Symbol {
	values := s.Values()
	out := make([]Symbol, len(values))
	for i, v := range values {
		out[i] = v.(Symbol)
	}
	return out
}
