package lexer

// Tokenizer is the full C3→C6 pipeline wired together: assemble per-token
// NFAs under a shared start, determinize, minimize, and scan.
type Tokenizer struct {
	Rules    []TokenRule
	Alphabet []rune
	Raw      *DFA // pre-minimization, kept for equivalence testing
	DFA      *DFA
	Scanner  *Scanner
}

// NewTokenizer runs the whole construction pipeline once and returns a
// Tokenizer ready to Scan. The DFA is minimized before being handed to the
// Scanner; Raw retains the un-minimized subset-construction result so
// callers (and tests) can check minimize(subset(nfa)) and subset(nfa)
// against the same input for the NFA/DFA/minimal-DFA equivalence property.
func NewTokenizer(rules []TokenRule, alphabet []rune) (*Tokenizer, error) {
	nfa, err := Assemble(rules)
	if err != nil {
		return nil, err
	}
	raw := BuildDFA(nfa, alphabet, rules)
	minimal := Minimize(raw, rules)
	return &Tokenizer{
		Rules:    rules,
		Alphabet: alphabet,
		Raw:      raw,
		DFA:      minimal,
		Scanner:  NewScanner(minimal),
	}, nil
}

// Scan is a convenience forwarding to Tokenizer.Scanner.Scan.
func (t *Tokenizer) Scan(input string) ([]Token, error) { return t.Scanner.Scan(input) }
