package lexer

import "lexgram/regex"

// TokenRule names one token kind and the regex that recognizes it. Priority
// is the rule's position in the slice — earlier rules win maximal-munch
// ties — which is why rules are carried as an ordered slice rather than a
// Go map: map iteration order cannot express the priority the spec
// requires.
type TokenRule struct {
	ID      string
	Pattern string
}

// Assemble builds the Tokenizer Assembler's combined NFA (C3): each rule's
// regex is compiled to its own Thompson NFA via a shared Builder so every
// state in the combined automaton carries a unique id, the per-token accept
// state is tagged with the rule's TokenID, and a fresh shared start state
// gets an ε-edge to every per-token start.
func Assemble(rules []TokenRule) (*regex.NFA, error) {
	b := regex.NewBuilder()
	start := b.NewState()

	for _, rule := range rules {
		n, err := regex.BuildNFA(b, rule.Pattern)
		if err != nil {
			return nil, err
		}
		n.End.TokenID = rule.ID
		start.AddEpsilon(n.Start)
	}

	// The combined NFA has no single accepting state; End is left nil and
	// callers determine acceptance by State.Final, as produced by each
	// constituent NFA's own Thompson construction.
	return &regex.NFA{Start: start}, nil
}
