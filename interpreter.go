// interpreter.go — call-by-value evaluation of Terms into Values.
//
// OVERVIEW
// --------
// Evaluation does not perform substitution: an abstraction evaluates to a
// host closure (a Go func from Value to Value) that captures a snapshot of
// the current environment. Applying a closure evaluates the body in that
// snapshot extended with the parameter binding. This higher-order encoding
// is what makes reification (reify.go) necessary to display results.
//
// Semantics:
//   - Var:  the bound Value if the name is in the environment, otherwise the
//     variable itself — open terms evaluate without a closed-world check.
//   - Abs:  a VTClosure capturing the environment by value; later Define
//     calls on the source environment never leak into the closure.
//   - App:  evaluate function then argument; applying anything but a
//     closure is fatal for the evaluation in progress.
//
// The fatal case is raised as an internal panic carrying a *RuntimeError
// and recovered at the Interpreter entry points, which return it as an
// ordinary Go error. There is no partial result: a failed evaluation
// yields nothing.
//
// Evaluation is single-threaded and touches no shared state; distinct
// evaluations (even of the same Term) may run concurrently. Depth is
// bounded only by the goroutine stack, so a divergent term such as
// (\x. x x) (\x. x x) exhausts the stack rather than returning.
package depenlang

import "fmt"

////////////////////////////////////////////////////////////////////////////////
//                              PUBLIC TYPES & CTORS
////////////////////////////////////////////////////////////////////////////////

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTVar     ValueTag = iota // string: an identifier evaluation could not resolve
	VTClosure                 // func(Value) Value
)

// Value is the evaluator's runtime representation. The tag determines the
// dynamic type of Data: string for VTVar, func(Value) Value for VTClosure.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// VarVal wraps an unresolved identifier as a Value.
func VarVal(name string) Value { return Value{Tag: VTVar, Data: name} }

// ClosureVal wraps a host function as a Value.
func ClosureVal(fn func(Value) Value) Value { return Value{Tag: VTClosure, Data: fn} }

// String renders a debug representation; closures are opaque.
func (v Value) String() string {
	switch v.Tag {
	case VTVar:
		return fmt.Sprintf("Var(%q)", v.Data.(string))
	case VTClosure:
		return "Closure(<function>)"
	default:
		return "<unknown>"
	}
}

// Equal compares Values. Variables compare by name; closures are compared
// by nothing at all — two closures are never equal, even when behaviorally
// identical. This is a documented limitation of the representation.
func (v Value) Equal(o Value) bool {
	if v.Tag != o.Tag {
		return false
	}
	if v.Tag == VTVar {
		return v.Data.(string) == o.Data.(string)
	}
	return false
}

// Env maps identifier names to Values. Environments are extended by
// copying, never destructively: a closure's captured snapshot is immutable
// from its perspective for the closure's whole lifetime.
type Env struct {
	table map[string]Value
}

// NewEnv creates an empty environment.
func NewEnv() *Env { return &Env{table: map[string]Value{}} }

// Define binds name to v in this environment. It affects only future
// snapshots; closures that already captured this environment see nothing.
func (e *Env) Define(name string, v Value) { e.table[name] = v }

// Get retrieves the binding for name, if present.
func (e *Env) Get(name string) (Value, bool) {
	v, ok := e.table[name]
	return v, ok
}

// snapshot copies the environment. Used at closure creation and extension.
func (e *Env) snapshot() *Env {
	cp := make(map[string]Value, len(e.table))
	for k, v := range e.table {
		cp[k] = v
	}
	return &Env{table: cp}
}

// extend returns a copy of e with name bound to v, shadowing any previous
// binding in the copy only.
func (e *Env) extend(name string, v Value) *Env {
	cp := e.snapshot()
	cp.table[name] = v
	return cp
}

// RuntimeError represents an execution-time failure: in this calculus, the
// only one is applying a value that is not a function.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR: %s", e.Msg)
}

////////////////////////////////////////////////////////////////////////////////
//                               PUBLIC INTERPRETER
////////////////////////////////////////////////////////////////////////////////

// Interpreter is the entry point for evaluating DepenLang programs.
//
// Global is the persistent environment used by EvalSource; hosts may
// pre-bind names there with Define. Each evaluation captures its own
// snapshot, so concurrent EvalSource calls are safe as long as Global is
// not concurrently mutated.
type Interpreter struct {
	Global *Env
}

// NewInterpreter constructs an interpreter with an empty Global.
func NewInterpreter() *Interpreter {
	return &Interpreter{Global: NewEnv()}
}

// EvalSource runs the whole pipeline on one source term: lex, parse,
// evaluate in Global, and reify the result back to a Term. Errors are
// *LexError, *ParseError, or *RuntimeError, wrapped with a caret-annotated
// source snippet where a position is known. Reification probes closures by
// calling them, so the fatal apply condition can surface there as well; it
// is recovered the same way.
func (ip *Interpreter) EvalSource(src string) (t Term, err error) {
	parsed, perr := Parse(src)
	if perr != nil {
		return nil, WrapErrorWithSource(perr, src)
	}
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(*RuntimeError)
			if !ok {
				panic(r)
			}
			t, err = nil, re
		}
	}()
	return Reify(Eval(parsed, ip.Global)), nil
}

// ReifyValue converts an evaluation result back into a Term. Probing a
// closure calls it, so a stuck application (e.g. the value of \x. x x)
// raises the fatal apply condition here rather than during EvalTerm;
// ReifyValue recovers it into a returned *RuntimeError. Drivers that hold
// a Value should reify through this, not bare Reify.
func (ip *Interpreter) ReifyValue(v Value) (t Term, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(*RuntimeError)
			if !ok {
				panic(r)
			}
			t, err = nil, re
		}
	}()
	return Reify(v), nil
}

// EvalTerm evaluates a Term in env (Global when env is nil), converting
// the fatal apply-of-non-function condition into a returned *RuntimeError.
func (ip *Interpreter) EvalTerm(t Term, env *Env) (v Value, err error) {
	if env == nil {
		env = ip.Global
	}
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(*RuntimeError)
			if !ok {
				panic(r)
			}
			v, err = Value{}, re
		}
	}()
	return Eval(t, env), nil
}

// Eval evaluates term in env. It is total over parseable terms except for
// the apply-of-non-function case, which panics with a *RuntimeError; use
// Interpreter.EvalTerm to get it as an error value instead.
func Eval(term Term, env *Env) Value {
	switch t := term.(type) {
	case Var:
		if v, ok := env.Get(t.Name); ok {
			return v
		}
		return VarVal(t.Name)
	case Abs:
		captured := env.snapshot()
		return ClosureVal(func(arg Value) Value {
			return Eval(t.Body, captured.extend(t.Param, arg))
		})
	case App:
		fun := Eval(t.Fun, env)
		arg := Eval(t.Arg, env)
		if fun.Tag != VTClosure {
			panic(&RuntimeError{Msg: fmt.Sprintf("cannot apply a non-function value %s", fun)})
		}
		return fun.Data.(func(Value) Value)(arg)
	default:
		panic(&RuntimeError{Msg: "cannot evaluate an invalid term"})
	}
}
