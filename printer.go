// printer.go — rendering Terms and Values back to text.
//
// PrettyPrint emits concrete surface syntax, inserting parentheses only
// where omitting them would change the parse:
//
//   - a function position that is itself an abstraction: (\x. x) y
//   - an argument position that is an application or abstraction: f (g x)
//
// Everything else relies on the grammar's own rules (application is
// left-associative, abstraction bodies extend maximally right), which gives
// the round-trip property: Parse(PrettyPrint(t)) == t for every t produced
// by a successful parse.
//
// AsciiTree is a purely diagnostic box-drawing rendering of the tree shape;
// its only contract is determinism.
package depenlang

import (
	"fmt"
	"strings"
)

// PrettyPrint renders a Term in surface syntax with minimal parentheses.
func PrettyPrint(t Term) string {
	switch t := t.(type) {
	case Var:
		return t.Name
	case Abs:
		return fmt.Sprintf("\\%s. %s", t.Param, PrettyPrint(t.Body))
	case App:
		fun := PrettyPrint(t.Fun)
		if _, ok := t.Fun.(Abs); ok {
			fun = "(" + fun + ")"
		}
		arg := PrettyPrint(t.Arg)
		switch t.Arg.(type) {
		case App, Abs:
			arg = "(" + arg + ")"
		}
		return fun + " " + arg
	default:
		return "<invalid term>"
	}
}

// AsciiTree renders a Term as an indented box-drawing diagram:
//
//	└── App
//	  │ ├── Abs (x)
//	  │   └── Var (x)
//	    └── Var (y)
func AsciiTree(t Term) string {
	var b strings.Builder
	asciiTree(&b, t, "", true)
	return b.String()
}

func asciiTree(b *strings.Builder, t Term, indent string, isLast bool) {
	b.WriteString(indent)
	if isLast {
		b.WriteString("└── ")
	} else {
		b.WriteString("├── ")
	}

	switch t := t.(type) {
	case Var:
		fmt.Fprintf(b, "Var (%s)\n", t.Name)
	case Abs:
		fmt.Fprintf(b, "Abs (%s)\n", t.Param)
		asciiTree(b, t.Body, indent+"  ", true)
	case App:
		b.WriteString("App\n")
		asciiTree(b, t.Fun, indent+"│ ", false)
		asciiTree(b, t.Arg, indent+"  ", true)
	}
}

// FormatValue renders a Value for display without reifying it. Closures are
// opaque; use Reify to recover a printable term.
func FormatValue(v Value) string {
	switch v.Tag {
	case VTVar:
		return v.Data.(string)
	case VTClosure:
		return "<closure>"
	default:
		return "<unknown>"
	}
}
