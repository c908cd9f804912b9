package asp

import "strings"

// Format renders p in the default dialect matching the parser's accepted
// grammar (spec §4.3 round-trip identity).
func Format(p Program) string {
	var b strings.Builder
	for _, r := range p.Rules {
		writeRule(&b, r)
		b.WriteString("\n")
	}
	return b.String()
}

func writeRule(b *strings.Builder, r Rule) {
	switch r.Head.Kind {
	case HeadBasic:
		writeAtom(b, r.Head.Atom)
	case HeadChoice:
		b.WriteString("{")
		writeAtom(b, r.Head.Atom)
		b.WriteString("}")
	}
	if len(r.Body) > 0 || r.Head.Kind == HeadFalsity {
		if r.Head.Kind != HeadFalsity {
			b.WriteString(" ")
		}
		b.WriteString(":- ")
		for i, bf := range r.Body {
			if i > 0 {
				b.WriteString(", ")
			}
			writeBodyFormula(b, bf)
		}
	}
	b.WriteString(".")
}

func writeAtom(b *strings.Builder, a Atom) {
	b.WriteString(a.Symbol)
	if len(a.Terms) == 0 {
		return
	}
	b.WriteString("(")
	for i, t := range a.Terms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteString(")")
}

func writeBodyFormula(b *strings.Builder, bf BodyFormula) {
	switch bf.Kind {
	case BodyLiteral:
		b.WriteString(bf.Sign.String())
		writeAtom(b, bf.Atom)
	case BodyComparison:
		b.WriteString(bf.Left.String())
		b.WriteString(" ")
		b.WriteString(bf.Rel.String())
		b.WriteString(" ")
		b.WriteString(bf.Right.String())
	}
}
