// reify.go — reading evaluation results back into displayable syntax.
//
// A closure Value is opaque: the only way to learn what it does is to call
// it. Reify probes a closure with a fresh unbound variable, reifies
// whatever comes back, and wraps the result in an Abs over the probe name.
// Nested closures probe recursively into a nested chain of Abs nodes, so
// this is a small normalization-by-evaluation read-back restricted to
// values with no pending computation.
//
// Probe names are generated per nesting depth (x, x1, x2, ...) so that a
// closure returning a closure reifies without the two binders sharing a
// name. Termination holds for any closure built by Eval from a finite
// Term: each probe strips exactly one layer of abstraction.
package depenlang

import "fmt"

// Reify converts an evaluation result back into a Term.
func Reify(v Value) Term {
	return reifyAt(v, 0)
}

func reifyAt(v Value, depth int) Term {
	switch v.Tag {
	case VTVar:
		return Var{Name: v.Data.(string)}
	case VTClosure:
		name := probeName(depth)
		result := v.Data.(func(Value) Value)(VarVal(name))
		return Abs{Param: name, Body: reifyAt(result, depth+1)}
	default:
		return Var{Name: "<unknown>"}
	}
}

// probeName returns the fresh variable used to probe a closure at the
// given nesting depth: "x" at the top, then "x1", "x2", ...
func probeName(depth int) string {
	if depth == 0 {
		return "x"
	}
	return fmt.Sprintf("x%d", depth)
}
