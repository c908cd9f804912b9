package asp

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type tokKind int

const (
	tokEOF tokKind = iota
	tokIdentVar
	tokIdentSym
	tokQuotedSym
	tokNumeral
	tokLParen
	tokRParen
	tokLBrace
	tokRBrace
	tokComma
	tokDot
	tokColonDash
	tokNot
	tokEqual
	tokNotEqual
	tokLess
	tokLessEqual
	tokGreater
	tokGreaterEqual
	tokPlus
	tokMinus
	tokTimes
	tokDivide
	tokModulo
	tokDotDot
	tokInf
	tokSup
)

type lexToken struct {
	kind   tokKind
	lexeme string
	pos    int
}

var aspLexer *lexmachine.Lexer

func init() {
	aspLexer = lexmachine.NewLexer()
	mk := func(k tokKind) lexmachine.Action {
		return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return lexToken{kind: k, lexeme: string(m.Bytes), pos: m.TC}, nil
		}
	}
	skip := func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return nil, nil
	}
	aspLexer.Add([]byte(`%[^\n]*`), skip)
	aspLexer.Add([]byte(`( |\t|\n|\r)+`), skip)
	aspLexer.Add([]byte(`not`), mk(tokNot))
	aspLexer.Add([]byte(`#inf`), mk(tokInf))
	aspLexer.Add([]byte(`#sup`), mk(tokSup))
	aspLexer.Add([]byte(`:-`), mk(tokColonDash))
	aspLexer.Add([]byte(`\.\.`), mk(tokDotDot))
	aspLexer.Add([]byte(`\.`), mk(tokDot))
	aspLexer.Add([]byte(`!=`), mk(tokNotEqual))
	aspLexer.Add([]byte(`<=`), mk(tokLessEqual))
	aspLexer.Add([]byte(`>=`), mk(tokGreaterEqual))
	aspLexer.Add([]byte(`=`), mk(tokEqual))
	aspLexer.Add([]byte(`<`), mk(tokLess))
	aspLexer.Add([]byte(`>`), mk(tokGreater))
	aspLexer.Add([]byte(`\+`), mk(tokPlus))
	aspLexer.Add([]byte(`-`), mk(tokMinus))
	aspLexer.Add([]byte(`\*`), mk(tokTimes))
	aspLexer.Add([]byte(`/`), mk(tokDivide))
	aspLexer.Add([]byte(`\\`), mk(tokModulo))
	aspLexer.Add([]byte(`\(`), mk(tokLParen))
	aspLexer.Add([]byte(`\)`), mk(tokRParen))
	aspLexer.Add([]byte(`\{`), mk(tokLBrace))
	aspLexer.Add([]byte(`\}`), mk(tokRBrace))
	aspLexer.Add([]byte(`,`), mk(tokComma))
	aspLexer.Add([]byte(`[0-9]+`), mk(tokNumeral))
	aspLexer.Add([]byte(`"[^"]*"`), mk(tokQuotedSym))
	aspLexer.Add([]byte(`[A-Z_][A-Za-z0-9_]*`), mk(tokIdentVar))
	aspLexer.Add([]byte(`[a-z][A-Za-z0-9_]*`), mk(tokIdentSym))
	if err := aspLexer.Compile(); err != nil {
		panic(fmt.Sprintf("asp: compiling lexmachine DFA: %v", err))
	}
}

func tokenize(src string) ([]lexToken, error) {
	scanner, err := aspLexer.Scanner([]byte(src))
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
