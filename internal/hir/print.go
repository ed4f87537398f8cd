package hir

import (
	"strconv"
	"strings"
)

// Print renders a single HIR expression as a deterministic, nested
// textual form. It gives the snapshot tests (see lowering package) and
// ad-hoc debugging something readable to look at instead of a raw Go
// struct dump.
func Print(e Expr) string {
	var sb strings.Builder
	printExpr(&sb, e)
	return sb.String()
}

// PrintAll renders a top-level expression sequence, one line per entry.
func PrintAll(exprs []Expr) string {
	var sb strings.Builder
	for i, e := range exprs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		printExpr(&sb, e)
	}
	return sb.String()
}

func printExpr(sb *strings.Builder, e Expr) {
	if e == nil {
		sb.WriteString("<nil>")
		return
	}
	switch n := e.(type) {
	case *IntLiteral:
		sb.WriteString("int(")
		sb.WriteString(strconv.FormatInt(n.Value, 10))
		sb.WriteByte(')')
	case *BoolLiteral:
		sb.WriteString("bool(")
		if n.Value {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
		sb.WriteByte(')')
	case *StringLiteral:
		sb.WriteString("string(")
		for i, part := range n.Parts {
			if i > 0 {
				sb.WriteString(", ")
			}
			switch p := part.(type) {
			case LiteralStringPart:
				sb.WriteString("lit(" + p.Value + ")")
			case InterpolatedStringPart:
				sb.WriteString("interp(")
				printExpr(sb, p.Inner)
				sb.WriteByte(')')
			}
		}
		sb.WriteByte(')')
	case *IdentifierRef:
		sb.WriteString("ident(")
		printIdentifier(sb, n.Identifier)
		sb.WriteByte(')')
	case *Return:
		sb.WriteString("return(")
		printExpr(sb, n.Inner)
		sb.WriteByte(')')
	case *Call:
		sb.WriteString("call(")
		printExpr(sb, n.Target)
		for _, arg := range n.Args {
			sb.WriteString(", ")
			if arg.Name != nil {
				sb.WriteString(*arg.Name + ": ")
			}
			printExpr(sb, arg.Value)
		}
		sb.WriteByte(')')
	case *Navigation:
		sb.WriteString("nav(")
		printExpr(sb, n.Receiver)
		sb.WriteString(", " + n.Member + ")")
	case *If:
		sb.WriteString("if(")
		printExpr(sb, n.Condition)
		sb.WriteString(", ")
		printExpr(sb, n.Then)
		sb.WriteString(", ")
		printExpr(sb, n.Else)
		sb.WriteByte(')')
	case *Loop:
		sb.WriteString("loop(")
		printExpr(sb, n.Body)
		sb.WriteByte(')')
	case *While:
		sb.WriteString("while(")
		printExpr(sb, n.Condition)
		sb.WriteString(", ")
		printExpr(sb, n.Body)
		sb.WriteByte(')')
	case *Break:
		sb.WriteString("break")
	case *Continue:
		sb.WriteString("continue")
	case *Assignment:
		sb.WriteString("assign(")
		printIdentifier(sb, n.Target)
		sb.WriteString(", ")
		printExpr(sb, n.Value)
		sb.WriteByte(')')
	case *PropertyBinding:
		sb.WriteString("property(")
		printIdentifier(sb, n.Target)
		sb.WriteByte(')')
	default:
		sb.WriteString("<unknown>")
	}
}

func printIdentifier(sb *strings.Builder, id Identifier) {
	switch i := id.(type) {
	case ThisIdentifier:
		sb.WriteString("this")
	case SuperIdentifier:
		sb.WriteString("super")
	case ParameterIdentifier:
		sb.WriteString("param:" + i.Name)
	case LocalPropertyIdentifier:
		sb.WriteString("local:" + i.Name)
	case PropertyIdentifier:
		sb.WriteString("prop:" + i.Declaration.SimpleName())
	case ReflectionIdentifier:
		sb.WriteString("reflect:" + i.Declaration.SimpleName())
	default:
		sb.WriteString("<unknown-ident>")
	}
}
