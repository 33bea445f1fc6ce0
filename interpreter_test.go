// interpreter_test.go
package depenlang

import (
	"strings"
	"testing"
)

// --- helpers ---------------------------------------------------------------

func evalSrc(t *testing.T, src string) Value {
	t.Helper()
	term := mustParse(t, src)
	ip := NewInterpreter()
	v, err := ip.EvalTerm(term, nil)
	if err != nil {
		t.Fatalf("eval error for %q: %v", src, err)
	}
	return v
}

func wantVar(t *testing.T, v Value, name string) {
	t.Helper()
	if v.Tag != VTVar || v.Data.(string) != name {
		t.Fatalf("want Var(%q), got %s", name, v)
	}
}

// --- evaluation ------------------------------------------------------------

func Test_Eval_Variable_Lookup(t *testing.T) {
	env := NewEnv()
	env.Define("x", VarVal("xValue"))
	wantVar(t, Eval(Var{Name: "x"}, env), "xValue")
}

func Test_Eval_Unbound_Variable_Is_Itself(t *testing.T) {
	wantVar(t, evalSrc(t, "q"), "q")
}

func Test_Eval_Identity_Application(t *testing.T) {
	wantVar(t, evalSrc(t, `(\x. x) y`), "y")
}

func Test_Eval_Curried_Constant(t *testing.T) {
	wantVar(t, evalSrc(t, `(\x. \y. x) a b`), "a")
}

func Test_Eval_Abstraction_Yields_Closure(t *testing.T) {
	v := evalSrc(t, `\x. x`)
	if v.Tag != VTClosure {
		t.Fatalf("want closure, got %s", v)
	}
}

func Test_Eval_Environment_Capture(t *testing.T) {
	env := NewEnv()
	env.Define("z", VarVal("zValue"))
	term := mustParse(t, `(\x. z) anything`)
	wantVar(t, Eval(term, env), "zValue")
}

func Test_Eval_Closure_Captures_By_Value(t *testing.T) {
	env := NewEnv()
	env.Define("z", VarVal("before"))
	clo := Eval(Abs{Param: "x", Body: Var{Name: "z"}}, env)

	// Mutating the defining environment after creation must not reach the
	// closure's snapshot.
	env.Define("z", VarVal("after"))
	wantVar(t, clo.Data.(func(Value) Value)(VarVal("ignored")), "before")
}

func Test_Eval_Parameter_Shadows_Outer_Binding(t *testing.T) {
	env := NewEnv()
	env.Define("x", VarVal("outer"))
	term := mustParse(t, `(\x. x) inner`)
	wantVar(t, Eval(term, env), "inner")
}

func Test_Eval_Repeated_Invocation_Is_Referentially_Transparent(t *testing.T) {
	clo := evalSrc(t, `\x. x`)
	fn := clo.Data.(func(Value) Value)
	wantVar(t, fn(VarVal("a")), "a")
	wantVar(t, fn(VarVal("b")), "b")
	wantVar(t, fn(VarVal("a")), "a")
}

func Test_Eval_Apply_NonFunction_Is_RuntimeError(t *testing.T) {
	ip := NewInterpreter()
	term := mustParse(t, "x y")
	_, err := ip.EvalTerm(term, nil)
	if err == nil {
		t.Fatalf("want runtime error, got none")
	}
	re, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("want *RuntimeError, got %T: %v", err, err)
	}
	if !strings.Contains(re.Msg, "non-function") {
		t.Fatalf("unexpected message: %q", re.Msg)
	}
}

func Test_Eval_Argument_Evaluated_Before_Application(t *testing.T) {
	// Call-by-value: (\x. \y. x) ((\z. z) a) reduces its argument first.
	wantVar(t, evalSrc(t, `(\x. \y. x) ((\z. z) a) b`), "a")
}

// --- values & environments -------------------------------------------------

func Test_Value_Equality(t *testing.T) {
	if !VarVal("x").Equal(VarVal("x")) {
		t.Fatalf("equal vars compare unequal")
	}
	if VarVal("x").Equal(VarVal("y")) {
		t.Fatalf("distinct vars compare equal")
	}
	id := func(v Value) Value { return v }
	if ClosureVal(id).Equal(ClosureVal(id)) {
		t.Fatalf("closures must never compare equal")
	}
	if VarVal("x").Equal(ClosureVal(id)) {
		t.Fatalf("var equals closure")
	}
}

func Test_Env_Extend_Does_Not_Mutate(t *testing.T) {
	env := NewEnv()
	env.Define("a", VarVal("one"))
	child := env.extend("a", VarVal("two"))

	v, _ := env.Get("a")
	wantVar(t, v, "one")
	v, _ = child.Get("a")
	wantVar(t, v, "two")
}

// --- pipeline --------------------------------------------------------------

func Test_Interpreter_EvalSource_Pipeline(t *testing.T) {
	ip := NewInterpreter()

	got, err := ip.EvalSource(`(\x. x) z`)
	if err != nil {
		t.Fatalf("EvalSource: %v", err)
	}
	if got != Term(Var{Name: "z"}) {
		t.Fatalf("got %#v", got)
	}

	got, err = ip.EvalSource(`\x. x`)
	if err != nil {
		t.Fatalf("EvalSource: %v", err)
	}
	if got != Term(Abs{Param: "x", Body: Var{Name: "x"}}) {
		t.Fatalf("got %#v", got)
	}
}

func Test_Interpreter_EvalSource_Uses_Global(t *testing.T) {
	ip := NewInterpreter()
	ip.Global.Define("z", VarVal("zValue"))
	got, err := ip.EvalSource(`(\x. z) anything`)
	if err != nil {
		t.Fatalf("EvalSource: %v", err)
	}
	if got != Term(Var{Name: "zValue"}) {
		t.Fatalf("got %#v", got)
	}
}

func Test_Interpreter_EvalSource_Surfaces_Errors(t *testing.T) {
	ip := NewInterpreter()
	if _, err := ip.EvalSource("x $"); err == nil {
		t.Fatalf("lex error not surfaced")
	}
	if _, err := ip.EvalSource("(x"); err == nil {
		t.Fatalf("parse error not surfaced")
	}
	if _, err := ip.EvalSource("x y"); err == nil {
		t.Fatalf("runtime error not surfaced")
	}
}
