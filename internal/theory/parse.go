package theory

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/anthem-go/anthem/internal/fol"
)

// ParseError reports a syntax error in a specification or user-guide
// source, in the same shape as fol.ParseError (spec §4.2's error-kind
// split). No concrete grammar for these auxiliary file formats was
// available to port, so this module defines one line-oriented grammar for
// both, documented here rather than ported from a source.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("theory: parse error on line %d: %s", e.Line, e.Msg)
}

// IOError wraps a failure to read a specification or user-guide file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("theory: reading %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseSpecification parses src as an ordered list of annotated formulas,
// one per non-blank, non-comment line:
//
//	<role>[/<direction>] [name]: <formula>
//
// role is one of assumption, spec, lemma, inductive-lemma, definition;
// direction, when present, is forward or backward (omitted means
// universal); name is an optional bareword naming the formula; formula is
// parsed by fol.Parse. `%` begins a line comment.
func ParseSpecification(src string) (Specification, error) {
	var spec Specification
	for i, raw := range strings.Split(src, "\n") {
		line := stripComment(raw)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		colon := strings.Index(line, ":")
		if colon < 0 {
			return Specification{}, &ParseError{Line: i + 1, Msg: "expected a ':' separating the header from the formula"}
		}
		header := strings.Fields(line[:colon])
		if len(header) == 0 {
			return Specification{}, &ParseError{Line: i + 1, Msg: "missing role"}
		}
		role, direction, err := parseRoleDirection(header[0])
		if err != nil {
			return Specification{}, &ParseError{Line: i + 1, Msg: err.Error()}
		}
		name := ""
		if len(header) > 1 {
			name = header[1]
		}
		f, err := fol.Parse(line[colon+1:])
		if err != nil {
			return Specification{}, &ParseError{Line: i + 1, Msg: err.Error()}
		}
		spec.Formulas = append(spec.Formulas, AnnotatedFormula{Role: role, Direction: direction, Name: name, Formula: f})
	}
	return spec, nil
}

// SpecificationFromFile composes ParseSpecification with reading path from
// disk.
func SpecificationFromFile(path string) (Specification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Specification{}, &IOError{Path: path, Err: err}
	}
	return ParseSpecification(string(data))
}

func parseRoleDirection(tok string) (Role, Direction, error) {
	roleTok, dirTok, hasDir := strings.Cut(tok, "/")
	var role Role
	switch roleTok {
	case "assumption":
		role = RoleAssumption
	case "spec":
		role = RoleSpec
	case "lemma":
		role = RoleLemma
	case "inductive-lemma":
		role = RoleInductiveLemma
	case "definition":
		role = RoleDefinition
	default:
		return 0, 0, fmt.Errorf("unknown role %q", roleTok)
	}
	direction := DirectionUniversal
	if hasDir {
		switch dirTok {
		case "forward":
			direction = DirectionForward
		case "backward":
			direction = DirectionBackward
		default:
			return 0, 0, fmt.Errorf("unknown direction %q", dirTok)
		}
	}
	return role, direction, nil
}

// ParseUserGuide parses src as a user guide: a sequence of lines, each
// either
//
//	input <predicate>/<arity>
//	output <predicate>/<arity>
//	placeholder <name>: <sort>
//	assume <name>: <formula>
//
// where sort is general, integer, or symbolic. `%` begins a line comment.
func ParseUserGuide(src string) (UserGuide, error) {
	ug := UserGuide{Placeholders: map[string]fol.Sort{}}
	for i, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(stripComment(raw))
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "input", "output":
			if len(fields) != 2 {
				return UserGuide{}, &ParseError{Line: i + 1, Msg: "expected 'input <predicate>/<arity>' or 'output <predicate>/<arity>'"}
			}
			p, err := parsePredicateSlash(fields[1])
			if err != nil {
				return UserGuide{}, &ParseError{Line: i + 1, Msg: err.Error()}
			}
			if fields[0] == "input" {
				ug.InputPredicates = append(ug.InputPredicates, p)
			} else {
				ug.OutputPredicates = append(ug.OutputPredicates, p)
			}

		case "placeholder":
			rest := strings.TrimSpace(strings.TrimPrefix(line, "placeholder"))
			name, sortTok, ok := strings.Cut(rest, ":")
			if !ok {
				return UserGuide{}, &ParseError{Line: i + 1, Msg: "expected 'placeholder <name>: <sort>'"}
			}
			sort, err := parseSortName(strings.TrimSpace(sortTok))
			if err != nil {
				return UserGuide{}, &ParseError{Line: i + 1, Msg: err.Error()}
			}
			ug.Placeholders[strings.TrimSpace(name)] = sort

		case "assume":
			rest := strings.TrimSpace(strings.TrimPrefix(line, "assume"))
			colon := strings.Index(rest, ":")
			if colon < 0 {
				return UserGuide{}, &ParseError{Line: i + 1, Msg: "expected 'assume <name>: <formula>'"}
			}
			name := strings.TrimSpace(rest[:colon])
			f, err := fol.Parse(rest[colon+1:])
			if err != nil {
				return UserGuide{}, &ParseError{Line: i + 1, Msg: err.Error()}
			}
			ug.Assumptions = append(ug.Assumptions, AnnotatedFormula{Role: RoleAssumption, Name: name, Formula: f})

		default:
			return UserGuide{}, &ParseError{Line: i + 1, Msg: fmt.Sprintf("unknown user-guide directive %q", fields[0])}
		}
	}
	return ug, nil
}

// UserGuideFromFile composes ParseUserGuide with reading path from disk.
func UserGuideFromFile(path string) (UserGuide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return UserGuide{}, &IOError{Path: path, Err: err}
	}
	return ParseUserGuide(string(data))
}

func parsePredicateSlash(tok string) (fol.Predicate, error) {
	symbol, arityTok, ok := strings.Cut(tok, "/")
	if !ok {
		return fol.Predicate{}, fmt.Errorf("expected '<predicate>/<arity>', got %q", tok)
	}
	arity, err := strconv.Atoi(arityTok)
	if err != nil || arity < 0 {
		return fol.Predicate{}, fmt.Errorf("invalid arity in %q", tok)
	}
	return fol.Predicate{Symbol: symbol, Arity: arity}, nil
}

func parseSortName(tok string) (fol.Sort, error) {
	switch tok {
	case "general":
		return fol.SortGeneral, nil
	case "integer":
		return fol.SortInteger, nil
	case "symbolic":
		return fol.SortSymbolic, nil
	default:
		return 0, fmt.Errorf("unknown sort %q", tok)
	}
}

func stripComment(line string) string {
	if i := strings.Index(line, "%"); i >= 0 {
		return line[:i]
	}
	return line
}
