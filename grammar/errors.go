package grammar

import "fmt"

// GrammarError reports a grammar that violates the data model's invariants:
// a symbol in a production's right-hand side that is neither a declared
// terminal nor a declared non-terminal, a production whose left side is not
// a non-terminal, or a start symbol that is not declared non-terminal.
type GrammarError struct {
	Reason string
}

func (e *GrammarError) Error() string { return fmt.Sprintf("invalid grammar: %s", e.Reason) }

func invalid(format string, args ...interface{}) error {
	return &GrammarError{Reason: fmt.Sprintf(format, args...)}
}
