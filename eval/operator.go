package eval

// OpKind enumerates every operator the shunting-yard stage can see.
type OpKind uint8

const (
	OpImplicitMul OpKind = iota
	OpTranspose          // postfix
	OpMatInverse         // postfix, the trailing "^-1" special-case on a matrix
	OpPow
	OpFactorial // postfix
	OpNot       // prefix unary
	OpNegate    // prefix unary
	OpAugment   // '|'
	OpMul
	OpDiv
	OpCross
	OpAdd
	OpSub
	OpEq
	OpNeq
	OpLt
	OpGt
	OpLe
	OpGe
	OpAnd
	OpOr
	OpXor
)

// Operator is the value-less shunting-yard node described in §3: kind,
// arity, and precedence, with no payload of its own.
type Operator struct {
	Kind       OpKind
	Arity      int // 1 (unary/postfix) or 2 (binary)
	Postfix    bool
	Level      int // 0 = highest precedence, 11 = lowest, per §4.3's table
	RightAssoc bool
}

func (Operator) isValue() {}

// precedenceLevel mirrors §4.3's table exactly. Factorial sits at level 3,
// looser than `^`'s level 2, but evalTokens never compares a postfix
// operator's level: it applies factorial to the top value as soon as it is
// read, which is why the flattened token order `a ^ b !` (produced when the
// source renders `a^(b!)` as a superscript containing `b!`) reduces as
// `a ^ (b!)` rather than `(a^b)!`.
var precedenceLevel = map[OpKind]int{
	OpImplicitMul: 0,
	OpTranspose:   1,
	OpMatInverse:  1,
	OpPow:         2,
	OpFactorial:   3,
	OpNot:         4,
	OpNegate:      4,
	OpAugment:     5,
	OpMul:         6,
	OpDiv:         6,
	OpCross:       6,
	OpAdd:         7,
	OpSub:         7,
	OpEq:          8,
	OpNeq:         8,
	OpLt:          8,
	OpGt:          8,
	OpLe:          8,
	OpGe:          8,
	OpAnd:         9,
	OpOr:          10,
	OpXor:         11,
}

func newBinaryOp(k OpKind) Operator {
	return Operator{Kind: k, Arity: 2, Level: precedenceLevel[k]}
}

func newUnaryOp(k OpKind) Operator {
	return Operator{Kind: k, Arity: 1, Level: precedenceLevel[k]}
}

func newPostfixOp(k OpKind) Operator {
	return Operator{Kind: k, Arity: 1, Postfix: true, Level: precedenceLevel[k]}
}

// FuncKind enumerates built-in functions; user-defined functions carry a
// *UserFunc instead and use FuncUser.
type FuncKind uint8

const (
	FuncUser FuncKind = iota
	FuncSin
	FuncCos
	FuncTan
	FuncAsin
	FuncAcos
	FuncAtan
	FuncLn
	FuncLog10
	FuncLog2
	FuncAbs
	FuncExp
)

// Function is the value-less function token described in §3: either a
// builtin (fixed arity) or a reference to a user-defined function.
type Function struct {
	Kind FuncKind
	User *UserFunc
}

func (Function) isValue() {}

var builtinArity = map[FuncKind]int{
	FuncSin: 1, FuncCos: 1, FuncTan: 1,
	FuncAsin: 1, FuncAcos: 1, FuncAtan: 1,
	FuncLn: 1, FuncLog10: 1, FuncLog2: 1,
	FuncAbs: 1, FuncExp: 1,
}

var builtinNames = map[string]FuncKind{
	"sin": FuncSin, "cos": FuncCos, "tan": FuncTan,
	"asin": FuncAsin, "acos": FuncAcos, "atan": FuncAtan,
	"ln": FuncLn, "log": FuncLog10, "log2": FuncLog2,
	"abs": FuncAbs, "exp": FuncExp,
}
