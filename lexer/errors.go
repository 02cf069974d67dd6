package lexer

import "fmt"

// LexicalError is raised at scan time when no accepting state is reachable
// from the current position, or the offending character lies outside the
// scanner's alphabet.
type LexicalError struct {
	Position int
	Char     rune
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at position %d: unexpected character %q", e.Position, e.Char)
}

// ScannerNotReadyError is raised when Scan is invoked against a Scanner
// whose DFA has not been built.
type ScannerNotReadyError struct{}

func (e *ScannerNotReadyError) Error() string { return "scanner: DFA has not been built" }
