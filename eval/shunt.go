package eval

// evalTokens reduces a flat token stream to a single Value via shunting
// yard (§3, §4.3). Postfix operators (factorial, transpose, the trailing
// matrix-inverse `^-1`) apply immediately against the top of the value
// stack as they're seen rather than being pushed onto the operator stack —
// this is what makes `a^(b!)` reduce correctly regardless of where
// factorial sits in precedenceLevel relative to `^`, since by the time `^`
// is compared against anything, the `!` it dominates has already collapsed
// into a single value token.
func (l *linearizer) evalTokens(toks []token) (Value, error) {
	var values []Value
	var ops []token

	apply := func(op Operator) error {
		if op.Arity == 1 {
			if len(values) < 1 {
				return ErrSyntax
			}
			v := values[len(values)-1]
			values = values[:len(values)-1]
			r, err := applyUnary(op, v, l.s)
			if err != nil {
				return err
			}
			values = append(values, r)
			return nil
		}
		if len(values) < 2 {
			return ErrSyntax
		}
		b := values[len(values)-1]
		a := values[len(values)-2]
		values = values[:len(values)-2]
		r, err := applyBinary(op, a, b, l.s)
		if err != nil {
			return err
		}
		values = append(values, r)
		return nil
	}

	popWhileHigherOrEqual := func(incoming Operator) error {
		for len(ops) > 0 {
			top := ops[len(ops)-1]
			if top.kind != tokOperator {
				break
			}
			if top.op.Level < incoming.Level || (top.op.Level == incoming.Level && !incoming.RightAssoc) {
				ops = ops[:len(ops)-1]
				if err := apply(top.op); err != nil {
					return err
				}
				continue
			}
			break
		}
		return nil
	}

	for _, tok := range toks {
		switch tok.kind {
		case tokValue:
			values = append(values, tok.val)

		case tokLeftParen:
			ops = append(ops, tok)

		case tokRightParen:
			matched := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == tokLeftParen {
					matched = true
					break
				}
				if err := apply(top.op); err != nil {
					return nil, err
				}
			}
			if !matched {
				return nil, ErrSyntax
			}

		case tokOperator:
			if tok.op.Postfix {
				if err := apply(tok.op); err != nil {
					return nil, err
				}
				continue
			}
			if tok.op.Arity == 1 {
				// A prefix operator has no left operand yet, so nothing on
				// the operator stack can be reduced before it is pushed.
				ops = append(ops, tok)
				continue
			}
			if err := popWhileHigherOrEqual(tok.op); err != nil {
				return nil, err
			}
			ops = append(ops, tok)

		case tokFunction:
			ops = append(ops, tok)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind == tokLeftParen {
			return nil, ErrSyntax
		}
		if err := apply(top.op); err != nil {
			return nil, err
		}
	}

	if len(values) != 1 {
		return nil, ErrSyntax
	}
	return values[0], nil
}

func applyUnary(op Operator, v Value, s Settings) (Value, error) {
	switch op.Kind {
	case OpNegate:
		switch x := v.(type) {
		case Numerical:
			return x.Neg(), nil
		case *Matrix:
			return x.Scale(Int(-1)), nil
		}
	case OpNot:
		n, ok := v.(Numerical)
		if !ok {
			return nil, ErrMath
		}
		if n.IsZero() {
			return Int(1), nil
		}
		return Int(0), nil
	case OpFactorial:
		n, ok := v.(Numerical)
		if !ok {
			return nil, ErrMath
		}
		return n.Factorial(), nil
	case OpTranspose:
		m, ok := v.(*Matrix)
		if !ok {
			return nil, ErrMath
		}
		return m.Transpose(), nil
	case OpMatInverse:
		m, ok := v.(*Matrix)
		if !ok {
			return nil, ErrMath
		}
		return m.Inverse(), nil
	}
	return nil, ErrMath
}

func applyBinary(op Operator, a, b Value, s Settings) (Value, error) {
	an, aIsNum := a.(Numerical)
	bn, bIsNum := b.(Numerical)
	am, aIsMat := a.(*Matrix)
	bm, bIsMat := b.(*Matrix)

	switch op.Kind {
	case OpImplicitMul, OpMul:
		switch {
		case aIsNum && bIsNum:
			return an.Mul(bn), nil
		case aIsMat && bIsMat:
			r := am.Mul(bm)
			if r == nil {
				return nil, ErrMath
			}
			return r, nil
		case aIsMat && bIsNum:
			return am.Scale(bn), nil
		case aIsNum && bIsMat:
			return bm.Scale(an), nil
		}
	case OpDiv:
		if aIsNum && bIsNum {
			return an.Div(bn, s, false), nil
		}
		if aIsMat && bIsNum {
			return am.Scale(Int(1).Div(bn, s, false)), nil
		}
	case OpAdd:
		switch {
		case aIsNum && bIsNum:
			return an.Add(bn), nil
		case aIsMat && bIsMat:
			r := am.Add(bm)
			if r == nil {
				return nil, ErrMath
			}
			return r, nil
		}
	case OpSub:
		switch {
		case aIsNum && bIsNum:
			return an.Sub(bn), nil
		case aIsMat && bIsMat:
			r := am.Sub(bm)
			if r == nil {
				return nil, ErrMath
			}
			return r, nil
		}
	case OpPow:
		if aIsNum && bIsNum {
			return an.Pow(bn), nil
		}
		if aIsMat && bIsNum && bn.IsInteger() && bn.AsFloat() == -1 {
			r := am.Inverse()
			if r == nil {
				return nil, ErrMath
			}
			return r, nil
		}
	case OpCross:
		if aIsMat && bIsMat {
			r := am.Cross(bm)
			if r == nil {
				return nil, ErrMath
			}
			return r, nil
		}
	case OpAugment:
		if aIsMat && bIsMat {
			r := am.Augment(bm)
			if r == nil {
				return nil, ErrMath
			}
			return r, nil
		}
	case OpEq:
		return boolNum(valuesEqual(a, b)), nil
	case OpNeq:
		return boolNum(!valuesEqual(a, b)), nil
	case OpLt:
		if aIsNum && bIsNum {
			return boolNum(an.Less(bn)), nil
		}
	case OpGt:
		if aIsNum && bIsNum {
			return boolNum(bn.Less(an)), nil
		}
	case OpLe:
		if aIsNum && bIsNum {
			return boolNum(an.Less(bn) || an.Equal(bn)), nil
		}
	case OpGe:
		if aIsNum && bIsNum {
			return boolNum(bn.Less(an) || an.Equal(bn)), nil
		}
	case OpAnd:
		if aIsNum && bIsNum {
			return boolNum(!an.IsZero() && !bn.IsZero()), nil
		}
	case OpOr:
		if aIsNum && bIsNum {
			return boolNum(!an.IsZero() || !bn.IsZero()), nil
		}
	case OpXor:
		if aIsNum && bIsNum {
			return boolNum(!an.IsZero() != !bn.IsZero()), nil
		}
	}
	return nil, ErrMath
}

func valuesEqual(a, b Value) bool {
	if an, ok := a.(Numerical); ok {
		if bn, ok := b.(Numerical); ok {
			return an.Equal(bn)
		}
		return false
	}
	if am, ok := a.(*Matrix); ok {
		if bm, ok := b.(*Matrix); ok {
			return am.Equal(bm)
		}
	}
	return false
}

func boolNum(b bool) Numerical {
	if b {
		return Int(1)
	}
	return Int(0)
}
