package eval

import "github.com/nspire-go/neda"

// Value is anything the evaluator can produce or bind: a Numerical or a
// Matrix. Operator and Function (operator.go) implement it too, as the
// non-value tokens of the shunting-yard stage. It's a closed sum, not an
// arbitrary interface — the method set is deliberately empty so the
// concrete types stay in lockstep with the switches that handle them
// everywhere else.
type Value interface{ isValue() }

func (Numerical) isValue() {}
func (*Matrix) isValue()   {}

// UserFunc is a user-defined function: a reference to a NEDA subtree plus
// its named arguments, not evaluated until called (§3 Function table).
type UserFunc struct {
	Args        []string
	Tree        *neda.Tree
	Body        neda.Ref
	DisplayName string
}

// Environment is the (vars, funcs, args) triple threaded through
// evaluation (§3, §9): args is the scoped stack of bindings for the
// currently-evaluating user function call or summation/product counter.
type Environment struct {
	Vars  map[string]Value
	Funcs map[string]*UserFunc

	args []argFrame
}

type argFrame struct {
	name  string
	value Value
}

// NewEnvironment returns an Environment with empty tables and Ans seeded
// to zero.
func NewEnvironment() *Environment {
	return &Environment{
		Vars:  map[string]Value{"Ans": Int(0)},
		Funcs: map[string]*UserFunc{},
	}
}

// PushArg binds name to value for the duration of the current call or
// summation/product iteration; args shadow the variable table.
func (e *Environment) PushArg(name string, value Value) {
	e.args = append(e.args, argFrame{name, value})
}

// PopArg removes the most recently pushed argument binding.
func (e *Environment) PopArg() {
	if len(e.args) > 0 {
		e.args = e.args[:len(e.args)-1]
	}
}

// Lookup resolves name, checking the args stack (innermost first) before
// the variable table.
func (e *Environment) Lookup(name string) (Value, bool) {
	for i := len(e.args) - 1; i >= 0; i-- {
		if e.args[i].name == name {
			return e.args[i].value, true
		}
	}
	v, ok := e.Vars[name]
	return v, ok
}
