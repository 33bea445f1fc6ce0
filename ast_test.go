// ast_test.go
package depenlang

import "testing"

func Test_Ast_StructuralEquality(t *testing.T) {
	a := Abs{Param: "x", Body: App{Fun: Var{Name: "x"}, Arg: Var{Name: "y"}}}
	b := Abs{Param: "x", Body: App{Fun: Var{Name: "x"}, Arg: Var{Name: "y"}}}
	if a != b {
		t.Fatalf("structurally identical terms compare unequal")
	}
	c := Abs{Param: "z", Body: a.Body}
	if a == c {
		t.Fatalf("terms with different binders compare equal")
	}
}

func Test_Subst_FreeVariable(t *testing.T) {
	if got := Subst("x", Var{Name: "y"}, Var{Name: "x"}); got != (Var{Name: "y"}) {
		t.Fatalf("subst x:=y in x: got %#v", got)
	}
	if got := Subst("x", Var{Name: "y"}, Var{Name: "z"}); got != (Var{Name: "z"}) {
		t.Fatalf("subst x:=y in z: got %#v", got)
	}
}

func Test_Subst_Shadowing_Stops_At_Binder(t *testing.T) {
	abs := Abs{Param: "x", Body: Var{Name: "x"}}
	if got := Subst("x", Var{Name: "y"}, abs); got != Term(abs) {
		t.Fatalf("binder must shadow the substituted name: got %#v", got)
	}
	// A different binder does not shadow.
	abs2 := Abs{Param: "w", Body: Var{Name: "x"}}
	want := Abs{Param: "w", Body: Var{Name: "y"}}
	if got := Subst("x", Var{Name: "y"}, abs2); got != Term(want) {
		t.Fatalf("got %#v", got)
	}
}

func Test_Subst_Application_Recurses_Both_Sides(t *testing.T) {
	app := App{Fun: Var{Name: "y"}, Arg: Var{Name: "x"}}
	want := App{Fun: Var{Name: "y"}, Arg: Var{Name: "y"}}
	if got := Subst("x", Var{Name: "y"}, app); got != Term(want) {
		t.Fatalf("got %#v", got)
	}
}

func Test_Subst_Does_Not_Mutate(t *testing.T) {
	orig := App{Fun: Var{Name: "x"}, Arg: Var{Name: "x"}}
	_ = Subst("x", Var{Name: "y"}, orig)
	if orig != (App{Fun: Var{Name: "x"}, Arg: Var{Name: "x"}}) {
		t.Fatalf("substitution mutated its input: %#v", orig)
	}
}

// Subst is documented as capture-unsafe: a free variable of the
// replacement collides with an inner binder and gets captured. This pins
// the behavior so an accidental "fix" shows up in review.
func Test_Subst_Is_CaptureUnsafe(t *testing.T) {
	// subst x := y inside \y. x  yields \y. y — y is captured.
	term := Abs{Param: "y", Body: Var{Name: "x"}}
	want := Abs{Param: "y", Body: Var{Name: "y"}}
	if got := Subst("x", Var{Name: "y"}, term); got != Term(want) {
		t.Fatalf("got %#v", got)
	}
}
