package printer

import (
	"fmt"
	"strconv"
	"strings"

	"tclc/internal/ir"
)

// exprString renders an Expr subtree to its C-source text. It is a
// pure function over the IR, independent of any io.Writer, since
// expressions never need to stream incrementally (§4.5).
func exprString(e ir.Expr) string {
	switch n := e.(type) {
	case *ir.IntImm:
		return strconv.FormatInt(n.Val, 10)
	case *ir.UIntImm:
		return strconv.FormatUint(n.Val, 10)
	case *ir.FloatImm:
		return formatFloat(n.Val)
	case *ir.StringImm:
		return n.Val
	case *ir.Unary:
		return n.Op.String() + exprString(n.A)
	case *ir.Binary:
		s := fmt.Sprintf("%s %s %s", exprString(n.A), n.Op.String(), exprString(n.B))
		if n.Bracketed {
			return "(" + s + ")"
		}
		return s
	case *ir.Compare:
		return fmt.Sprintf("%s %s %s", exprString(n.A), n.Op.String(), exprString(n.B))
	case *ir.Select:
		return fmt.Sprintf("(%s ? %s : %s)", exprString(n.Cond), exprString(n.T), exprString(n.F))
	case *ir.Call:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = exprString(a)
		}
		return fmt.Sprintf("%s(%s)", n.Name, strings.Join(args, ", "))
	case *ir.Cast:
		return fmt.Sprintf("(%s)%s", n.NewType.CName(), exprString(n.Val))
	case *ir.Var:
		return varString(n)
	case *ir.Index:
		return n.Name
	case *ir.Dom:
		return fmt.Sprintf("[%d, %d)", n.BeginValue(), n.BeginValue()+n.ExtentValue())
	default:
		return "?"
	}
}

func varString(v *ir.Var) string {
	var b strings.Builder
	b.WriteString(v.Name)
	for _, a := range v.Args {
		b.WriteByte('[')
		b.WriteString(exprString(a))
		b.WriteByte(']')
	}
	return b.String()
}
