// Command lexgram is an interactive demo of the lexgram toolkit: build a
// tokenizer from regex rules and watch it scan input, or dump FIRST/FOLLOW
// sets for a small built-in expression grammar.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"lexgram/grammar"
	"lexgram/lexer"
)

func main() {
	grammarMode := flag.Bool("grammar", false, "print FIRST/FOLLOW sets for the built-in expression grammar and exit")
	alphabet := flag.String("alphabet", "abcdefghijklmnopqrstuvwxyz0123456789 ", "alphabet the demo tokenizer accepts, as a literal string of runes")
	flag.Parse()

	initDisplay()

	if *grammarMode {
		runGrammarDemo()
		return
	}
	runTokenRepl([]rune(*alphabet))
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{Text: " INFO ", Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)}
	pterm.Error.Prefix = pterm.Prefix{Text: " ERROR ", Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack)}
	pterm.Success.Prefix = pterm.Prefix{Text: " OK ", Style: pterm.NewStyle(pterm.BgGreen, pterm.FgBlack)}
}

// runGrammarDemo prints FIRST/FOLLOW for the classic expression grammar
// E -> T E' ; E' -> + T E' | ε ; T -> F T' ; T' -> * F T' | ε ; F -> ( E ) | id
func runGrammarDemo() {
	E, Ep, T, Tp, F := grammar.NT("E"), grammar.NT("E'"), grammar.NT("T"), grammar.NT("T'"), grammar.NT("F")
	plus, star, lparen, rparen, id := grammar.T("+"), grammar.T("*"), grammar.T("("), grammar.T(")"), grammar.T("id")

	g, err := grammar.New(
		[]grammar.Production{
			{Left: E, Right: []grammar.Symbol{T, Ep}},
			{Left: Ep, Right: []grammar.Symbol{plus, T, Ep}},
			{Left: Ep, Right: []grammar.Symbol{grammar.Epsilon}},
			{Left: T, Right: []grammar.Symbol{F, Tp}},
			{Left: Tp, Right: []grammar.Symbol{star, F, Tp}},
			{Left: Tp, Right: []grammar.Symbol{grammar.Epsilon}},
			{Left: F, Right: []grammar.Symbol{lparen, E, rparen}},
			{Left: F, Right: []grammar.Symbol{id}},
		},
		[]grammar.Symbol{plus, star, lparen, rparen, id},
		[]grammar.Symbol{E, Ep, T, Tp, F},
		E,
	)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	pterm.Info.Printfln("terminals: %s", strings.Join(g.TerminalNames(), " "))

	a := grammar.NewAnalyzer(g)
	nonTerminals := []grammar.Symbol{E, Ep, T, Tp, F}

	tableData := pterm.TableData{{"Symbol", "FIRST", "FOLLOW"}}
	for _, nt := range nonTerminals {
		follow, err := a.Follow(nt)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		tableData = append(tableData, []string{nt.Name, joinSymbols(a.First(nt)), joinSymbols(follow)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

func joinSymbols(syms []grammar.Symbol) string {
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.Name
	}
	return strings.Join(names, " ")
}

// runTokenRepl opens an interactive session over a small demo rule set (a
// keyword, identifiers, and integers) and lets the user redefine rules or
// scan text against the current tokenizer.
func runTokenRepl(alphabet []rune) {
	rules := []lexer.TokenRule{
		{ID: "IF", Pattern: "if"},
		{ID: "ID", Pattern: "(a|b|c|d|e|f|g|h|i|j|k|l|m|n|o|p|q|r|s|t|u|v|w|x|y|z)+"},
		{ID: "NUM", Pattern: "(0|1|2|3|4|5|6|7|8|9)+"},
	}
	tok, err := lexer.NewTokenizer(rules, alphabet)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	pterm.Info.Println("lexgram token REPL — type 'scan <text>' or 'rule <NAME> = <regex>', ctrl-D to quit")
	rl, err := readline.New("lexgram> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "scan "):
			scanAndPrint(tok, strings.TrimPrefix(line, "scan "))
		case strings.HasPrefix(line, "rule "):
			rules, tok = addRule(rules, alphabet, strings.TrimPrefix(line, "rule "))
		default:
			scanAndPrint(tok, line)
		}
	}
	pterm.Info.Println("bye")
}

func scanAndPrint(tok *lexer.Tokenizer, text string) {
	tokens, err := tok.Scan(text)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	for _, tk := range tokens {
		pterm.Success.Printfln("%s %q", tk.TokenID, tk.Lexeme)
	}
}

func addRule(rules []lexer.TokenRule, alphabet []rune, def string) ([]lexer.TokenRule, *lexer.Tokenizer) {
	name, pattern, ok := strings.Cut(def, "=")
	name, pattern = strings.TrimSpace(name), strings.TrimSpace(pattern)
	if !ok || name == "" || pattern == "" {
		pterm.Error.Println("expected 'rule NAME = regex'")
		return rules, mustTokenizer(rules, alphabet)
	}
	updated := append(append([]lexer.TokenRule{}, rules...), lexer.TokenRule{ID: name, Pattern: pattern})
	tok, err := lexer.NewTokenizer(updated, alphabet)
	if err != nil {
		pterm.Error.Println(err.Error())
		return rules, mustTokenizer(rules, alphabet)
	}
	pterm.Success.Printfln("rule %s added", name)
	return updated, tok
}

func mustTokenizer(rules []lexer.TokenRule, alphabet []rune) *lexer.Tokenizer {
	tok, err := lexer.NewTokenizer(rules, alphabet)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return tok
}
