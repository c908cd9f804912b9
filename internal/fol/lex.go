package fol

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tokKind enumerates the FOL lexical categories: small integer token kinds
// produced by a lexmachine-compiled DFA.
type tokKind int

const (
	tokEOF tokKind = iota
	tokIdentVar
	tokIdentSym
	tokQuotedSym
	tokNumeral
	tokLParen
	tokRParen
	tokComma
	tokDollarI
	tokDollarS
	tokInf
	tokSup
	tokTrue
	tokFalse
	tokNot
	tokAnd
	tokOr
	tokImplies
	tokReverseImplies
	tokIff
	tokEqual
	tokNotEqual
	tokLess
	tokLessEqual
	tokGreater
	tokGreaterEqual
	tokPlus
	tokMinus
	tokTimes
	tokForall
	tokExists
)

type lexToken struct {
	kind   tokKind
	lexeme string
	pos    int
}

var folLexer *lexmachine.Lexer

func init() {
	folLexer = lexmachine.NewLexer()
	mk := func(k tokKind) lexmachine.Action {
		return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return lexToken{kind: k, lexeme: string(m.Bytes), pos: m.TC}, nil
		}
	}
	skip := func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return nil, nil
	}
	folLexer.Add([]byte(`%[^\n]*`), skip)
	folLexer.Add([]byte(`( |\t|\n|\r)+`), skip)
	folLexer.Add([]byte(`forall`), mk(tokForall))
	folLexer.Add([]byte(`exists`), mk(tokExists))
	folLexer.Add([]byte(`not`), mk(tokNot))
	folLexer.Add([]byte(`and`), mk(tokAnd))
	folLexer.Add([]byte(`or`), mk(tokOr))
	folLexer.Add([]byte(`#true`), mk(tokTrue))
	folLexer.Add([]byte(`#false`), mk(tokFalse))
	folLexer.Add([]byte(`#inf`), mk(tokInf))
	folLexer.Add([]byte(`#sup`), mk(tokSup))
	folLexer.Add([]byte(`<->`), mk(tokIff))
	folLexer.Add([]byte(`->`), mk(tokImplies))
	folLexer.Add([]byte(`<-`), mk(tokReverseImplies))
	folLexer.Add([]byte(`!=`), mk(tokNotEqual))
	folLexer.Add([]byte(`<=`), mk(tokLessEqual))
	folLexer.Add([]byte(`>=`), mk(tokGreaterEqual))
	folLexer.Add([]byte(`=`), mk(tokEqual))
	folLexer.Add([]byte(`<`), mk(tokLess))
	folLexer.Add([]byte(`>`), mk(tokGreater))
	folLexer.Add([]byte(`\+`), mk(tokPlus))
	folLexer.Add([]byte(`-`), mk(tokMinus))
	folLexer.Add([]byte(`\*`), mk(tokTimes))
	folLexer.Add([]byte(`\(`), mk(tokLParen))
	folLexer.Add([]byte(`\)`), mk(tokRParen))
	folLexer.Add([]byte(`,`), mk(tokComma))
	folLexer.Add([]byte(`\$i`), mk(tokDollarI))
	folLexer.Add([]byte(`\$s`), mk(tokDollarS))
	folLexer.Add([]byte(`[0-9]+`), mk(tokNumeral))
	folLexer.Add([]byte(`"[^"]*"`), mk(tokQuotedSym))
	folLexer.Add([]byte(`[A-Z_][A-Za-z0-9_]*`), mk(tokIdentVar))
	folLexer.Add([]byte(`[a-z][A-Za-z0-9_]*`), mk(tokIdentSym))
	if err := folLexer.Compile(); err != nil {
		panic(fmt.Sprintf("fol: compiling lexmachine DFA: %v", err))
	}
}

// tokenize runs the compiled DFA over src and returns the full token stream,
// terminated by a tokEOF sentinel. Keywords (forall, exists, not, and, or)
// are matched as literal patterns ahead of the general identifier pattern,
// so lexmachine's longest-match-then-first-rule tie-break gives them
// priority without a separate keyword table: unlike a lexer adapter meant
// to be reused across many grammars, the FOL grammar here is fixed, so the
// rules can simply be ordered by hand.
func tokenize(src string) ([]lexToken, error) {
	scanner, err := folLexer.Scanner([]byte(src))
	if err != nil {
		return nil, &ParseError{Pos: 0, Rule: "lex", Msg: err.Error()}
	}
	var toks []lexToken
	for {
		tok, err, eof := scanner.Next()
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				return nil, &ParseError{Pos: ui.StartColumn, Rule: "lex", Msg: "unrecognized input"}
			}
			return nil, &ParseError{Pos: 0, Rule: "lex", Msg: err.Error()}
		}
		if eof {
			break
		}
		if tok == nil {
			continue
		}
		toks = append(toks, tok.(lexToken))
	}
	toks = append(toks, lexToken{kind: tokEOF, pos: len(src)})
	return toks, nil
}
