package grammar

import (
	"sort"

	"golang.org/x/exp/maps"
)

// Production is an ordered pair (Left, Right): Left is a non-terminal and
// Right is an ordered sequence of symbols. A right-hand side of exactly
// [Epsilon] denotes an explicit ε-production.
type Production struct {
	Left  Symbol
	Right []Symbol
}

// Grammar is an ordered sequence of productions over a set of terminals and
// non-terminals, with one designated start symbol.
type Grammar struct {
	Productions  []Production
	Terminals    map[Symbol]struct{}
	NonTerminals map[Symbol]struct{}
	Start        Symbol
}

// New validates and constructs a Grammar. It enforces the data model's
// invariants: the left of every production is a declared non-terminal,
// every right-hand side symbol is either a declared terminal, a declared
// non-terminal, or the reserved Epsilon marker, and the start symbol is a
// declared non-terminal.
func New(productions []Production, terminals, nonTerminals []Symbol, start Symbol) (*Grammar, error) {
	g := &Grammar{
		Productions:  productions,
		Terminals:    toSet(terminals),
		NonTerminals: toSet(nonTerminals),
		Start:        start,
	}

	if start.Kind != NonTerminal || !g.hasNonTerminal(start) {
		return nil, invalid("start symbol %q must be a declared non-terminal", start.Name)
	}

	for _, p := range productions {
		if p.Left.Kind != NonTerminal || !g.hasNonTerminal(p.Left) {
			return nil, invalid("production left-hand side %q must be a declared non-terminal", p.Left.Name)
		}
		for _, sym := range p.Right {
			if sym == Epsilon {
				continue
			}
			if sym.IsTerminal() && g.hasTerminal(sym) {
				continue
			}
			if !sym.IsTerminal() && g.hasNonTerminal(sym) {
				continue
			}
			return nil, invalid("symbol %q in production %q -> ... is neither a declared terminal nor a declared non-terminal", sym.Name, p.Left.Name)
		}
	}

	return g, nil
}

func (g *Grammar) hasTerminal(s Symbol) bool    { _, ok := g.Terminals[s]; return ok }
func (g *Grammar) hasNonTerminal(s Symbol) bool { _, ok := g.NonTerminals[s]; return ok }

func toSet(symbols []Symbol) map[Symbol]struct{} {
	set := make(map[Symbol]struct{}, len(symbols))
	for _, s := range symbols {
		set[s] = struct{}{}
	}
	return set
}

// TerminalNames returns the grammar's declared terminal names, sorted.
// Terminals is a map (symbols are unordered by nature), so this extracts a
// stable display order the way ion/symtab.go pulls a sorted name list out
// of a symbol map with golang.org/x/exp/maps before printing or diffing it.
func (g *Grammar) TerminalNames() []string {
	names := make([]string, 0, len(g.Terminals))
	for _, s := range maps.Keys(g.Terminals) {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}
