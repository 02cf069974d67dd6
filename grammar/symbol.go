package grammar

// Kind distinguishes a terminal from a non-terminal symbol.
type Kind int

const (
	Terminal Kind = iota
	NonTerminal
)

// Symbol is a grammar symbol: a name plus a kind. Equality is by (Name,
// Kind), which a plain comparable struct gives for free — it is safe to use
// Symbol directly as a map key.
type Symbol struct {
	Name string
	Kind Kind
}

func (s Symbol) IsTerminal() bool { return s.Kind == Terminal }

func (s Symbol) String() string { return s.Name }

// Epsilon and EndOfInput are the two reserved terminals spec.md names: the
// empty-production marker and the end-of-input marker used by FOLLOW.
var (
	Epsilon    = Symbol{Name: "ε", Kind: Terminal}
	EndOfInput = Symbol{Name: "$", Kind: Terminal}
)

// T and NT are small constructors for terminal and non-terminal symbols,
// used throughout grammar literals and tests.
func T(name string) Symbol  { return Symbol{Name: name, Kind: Terminal} }
func NT(name string) Symbol { return Symbol{Name: name, Kind: NonTerminal} }
