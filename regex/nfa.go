// Package regex implements the front end of the toolkit: infix regex text
// down to a Thompson-constructed NFA, via a shunting-yard postfix pass.
package regex

import "github.com/emirpasic/gods/stacks/arraystack"

// Epsilon is the sentinel transition symbol for ε-moves. It is disjoint from
// every valid rune an operand can carry (operand runes are always >= 0).
const Epsilon rune = -1

const epsilon = Epsilon

// Transition is a single outgoing edge of a State: either an ε-move
// (Symbol == epsilon) or a move on a single input character.
type Transition struct {
	Symbol rune
	To     *State
}

// State is a single NFA state. Identity is by ID alone — two states are the
// same state iff they share an ID, never by structural comparison, since
// Thompson-constructed automata are cyclic once * or + closes a loop.
type State struct {
	ID      int
	Out     []Transition
	Final   bool
	TokenID string // set only on designated accepting states, by the assembler
}

// AddEpsilon adds an outgoing ε-transition from s to to. Exported so callers
// composing automata across packages (the Tokenizer Assembler) can wire a
// shared start state to each per-token NFA's start.
func (s *State) AddEpsilon(to *State) { s.Out = append(s.Out, Transition{Symbol: epsilon, To: to}) }

func (s *State) addOn(sym rune, to *State) { s.Out = append(s.Out, Transition{Symbol: sym, To: to}) }

// NFA is a start/end state pair. end is the sole accepting state produced by
// Thompson's construction for a single regex; it carries no TokenID until a
// Tokenizer Assembler tags it.
type NFA struct {
	Start *State
	End   *State
}

// Builder owns NFA state-id allocation for one construction. The spec's
// design notes call out the source's process-wide id counter as a
// determinism hazard; Builder replaces it with an allocator scoped to a
// single build so unrelated builds never collide and ids stay reproducible.
type Builder struct {
	nextID int
}

// NewBuilder returns a Builder with a fresh, zero-based id sequence.
func NewBuilder() *Builder { return &Builder{} }

// NewState allocates a fresh state from this builder's id sequence. It is
// exported so callers composing automata on top of the builder (such as the
// Tokenizer Assembler) can create their own linking states with ids drawn
// from the same sequence as the automata they connect.
func (b *Builder) NewState() *State {
	s := &State{ID: b.nextID}
	b.nextID++
	return s
}

// frag is an in-progress automaton fragment on the builder's stack.
type frag struct {
	start *State
	end   *State
}

// Build compiles a postfix regex (as produced by toPostfix) into an NFA via
// Thompson's construction. It returns a MalformedRegexError if the postfix
// string does not reduce to exactly one fragment.
func (b *Builder) Build(postfix string) (*NFA, error) {
	stack := arraystack.New()

	push := func(f frag) { stack.Push(f) }
	pop := func() (frag, bool) {
		v, ok := stack.Pop()
		if !ok {
			return frag{}, false
		}
		return v.(frag), true
	}

	for _, r := range postfix {
		switch r {
		case opConcat:
			right, ok1 := pop()
			left, ok2 := pop()
			if !ok1 || !ok2 {
				return nil, malformed(postfix, "concatenation operator missing an operand")
			}
			left.end.Final = false
			left.end.AddEpsilon(right.start)
			push(frag{start: left.start, end: right.end})

		case opUnion:
			b1, ok1 := pop()
			b2, ok2 := pop()
			if !ok1 || !ok2 {
				return nil, malformed(postfix, "union operator missing an operand")
			}
			ns := b.NewState()
			ne := b.NewState()
			ne.Final = true
			ns.AddEpsilon(b1.start)
			ns.AddEpsilon(b2.start)
			b1.end.Final = false
			b2.end.Final = false
			b1.end.AddEpsilon(ne)
			b2.end.AddEpsilon(ne)
			push(frag{start: ns, end: ne})

		case opStar:
			top, ok := pop()
			if !ok {
				return nil, malformed(postfix, "'*' missing an operand")
			}
			ns := b.NewState()
			ne := b.NewState()
			ne.Final = true
			top.end.Final = false
			top.end.AddEpsilon(top.start)
			top.end.AddEpsilon(ne)
			ns.AddEpsilon(top.start)
			ns.AddEpsilon(ne)
			push(frag{start: ns, end: ne})

		case opPlus:
			top, ok := pop()
			if !ok {
				return nil, malformed(postfix, "'+' missing an operand")
			}
			ns := b.NewState()
			ne := b.NewState()
			ne.Final = true
			top.end.Final = false
			ns.AddEpsilon(top.start)
			top.end.AddEpsilon(top.start)
			top.end.AddEpsilon(ne)
			push(frag{start: ns, end: ne})

		case opQMark:
			top, ok := pop()
			if !ok {
				return nil, malformed(postfix, "'?' missing an operand")
			}
			ns := b.NewState()
			ne := b.NewState()
			ne.Final = true
			top.end.Final = false
			ns.AddEpsilon(top.start)
			top.end.AddEpsilon(ne)
			ns.AddEpsilon(ne)
			push(frag{start: ns, end: ne})

		default:
			s := b.NewState()
			e := b.NewState()
			s.addOn(r, e)
			e.Final = true
			push(frag{start: s, end: e})
		}
	}

	final, ok := pop()
	if !ok || !stack.Empty() {
		return nil, malformed(postfix, "postfix expression does not reduce to a single automaton")
	}
	return &NFA{Start: final.start, End: final.end}, nil
}

// BuildNFA is the C1+C2 pipeline entry point: infix regex text to a Thompson
// NFA, via the shunting yard.
func BuildNFA(b *Builder, pattern string) (*NFA, error) {
	postfix, err := toPostfix(pattern)
	if err != nil {
		return nil, err
	}
	return b.Build(postfix)
}
