// ast.go — the Term tree and substitution.
//
// A Term is one of three value structs: Var, Abs, App. They are plain
// comparable values, so structural equality is Go's ==, and they are never
// mutated after construction: Subst builds new terms.
package depenlang

// Term represents a lambda calculus term.
type Term interface {
	String() string
	isTerm()
}

// Var is a reference to a bound or free identifier.
type Var struct {
	Name string
}

func (Var) isTerm() {}

func (v Var) String() string { return PrettyPrint(v) }

// Abs is an abstraction: it binds Param over Body.
type Abs struct {
	Param string
	Body  Term
}

func (Abs) isTerm() {}

func (a Abs) String() string { return PrettyPrint(a) }

// App applies Fun to Arg.
type App struct {
	Fun Term
	Arg Term
}

func (App) isTerm() {}

func (a App) String() string { return PrettyPrint(a) }

// Subst replaces every free occurrence of name in term with replacement,
// returning a new term. An Abs whose parameter equals name shadows it, and
// that subtree is returned untouched.
//
// The substitution is capture-unsafe: free variables of replacement are not
// renamed, so a binder inside term can capture them. Callers that need a
// correct calculus under open replacements must alpha-rename first.
func Subst(name string, replacement, term Term) Term {
	switch t := term.(type) {
	case Var:
		if t.Name == name {
			return replacement
		}
		return t
	case Abs:
		if t.Param == name {
			return t
		}
		return Abs{Param: t.Param, Body: Subst(name, replacement, t.Body)}
	case App:
		return App{
			Fun: Subst(name, replacement, t.Fun),
			Arg: Subst(name, replacement, t.Arg),
		}
	default:
		return term
	}
}
