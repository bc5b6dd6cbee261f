package eval

import "github.com/nspire-go/neda"

// Evaluate is the entry point: it linearizes and evaluates container,
// first checking whether the input is an assignment (variable update or
// function definition) rather than a plain expression (§4.3).
func Evaluate(t *neda.Tree, container neda.Ref, env *Environment, s Settings) (Value, error) {
	if name, args, bodyLo, ok := detectAssignment(t, container); ok {
		return evalAssignment(t, container, env, s, name, args, bodyLo)
	}
	l := &linearizer{t: t, env: env, s: s}
	toks := l.Linearize(container)
	if l.err != nil {
		return nil, l.err
	}
	v, err := l.evalTokens(toks)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// detectAssignment looks for a top-level `=` that isn't part of `==`, with
// a valid name (optionally followed by a parenthesized argument list) on
// its left. Returns the name, its argument names (nil for a plain variable
// assignment), and the index just past the `=` where the body begins.
func detectAssignment(t *neda.Tree, container neda.Ref) (name string, args []string, bodyLo int, ok bool) {
	n := t.ChildCount(container)
	eq := -1
	for i := 0; i < n; i++ {
		node := t.Node(t.ChildAt(container, i))
		if node.Kind != neda.KindChar || node.Byte != '=' {
			continue
		}
		if i+1 < n {
			nn := t.Node(t.ChildAt(container, i+1))
			if nn.Kind == neda.KindChar && nn.Byte == '=' {
				continue // "=="
			}
		}
		eq = i
		break
	}
	if eq <= 0 {
		return "", nil, 0, false
	}
	if !isNameStart(t.Node(t.ChildAt(container, 0)).Byte) {
		return "", nil, 0, false
	}
	name, nameLen := readName(t, container, 0)
	if nameLen == eq {
		return name, nil, eq + 1, true
	}
	// name(arg, arg, ...) = body
	if t.Node(t.ChildAt(container, nameLen)).Kind != neda.KindLeftBracket {
		return "", nil, 0, false
	}
	rightRef := t.Node(t.ChildAt(container, nameLen)).Match
	rightIdx := -1
	for j := nameLen + 1; j < n; j++ {
		if t.ChildAt(container, j) == rightRef {
			rightIdx = j
			break
		}
	}
	if rightIdx == -1 || rightIdx != eq-1 {
		return "", nil, 0, false
	}
	var argNames []string
	i := nameLen + 1
	for i < rightIdx {
		b := t.Node(t.ChildAt(container, i)).Byte
		if b == ',' {
			i++
			continue
		}
		an, an_len := readName(t, container, i)
		if an_len == 0 {
			return "", nil, 0, false
		}
		argNames = append(argNames, an)
		i += an_len
	}
	return name, argNames, eq + 1, true
}

func evalAssignment(t *neda.Tree, container neda.Ref, env *Environment, s Settings, name string, args []string, bodyLo int) (Value, error) {
	n := t.ChildCount(container)
	if args == nil {
		l := &linearizer{t: t, env: env, s: s}
		toks := sliceLinearize(l, container, bodyLo, n)
		if l.err != nil {
			return nil, l.err
		}
		v, err := l.evalTokens(toks)
		if err != nil {
			return nil, err
		}
		env.Vars[name] = v
		return Int(1), nil
	}
	env.Funcs[name] = &UserFunc{
		Args:        args,
		Tree:        t,
		Body:        cloneRange(t, container, bodyLo, n),
		DisplayName: name,
	}
	return Int(1), nil
}
