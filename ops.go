package bitslice

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Op is a whole-value operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpAnd
	OpOr
	OpXor
	OpAndNot
	OpLsh
	OpRsh
	// OpNot ignores its right-hand side.
	OpNot
)

var opNames = [...]string{
	OpAdd:    "add",
	OpSub:    "sub",
	OpMul:    "mul",
	OpDiv:    "div",
	OpMod:    "mod",
	OpAnd:    "and",
	OpOr:     "or",
	OpXor:    "xor",
	OpAndNot: "andnot",
	OpLsh:    "lsh",
	OpRsh:    "rsh",
	OpNot:    "not",
}

// Ops lists every operator in declaration order.
func Ops() []Op {
	ops := make([]Op, len(opNames))
	for i := range opNames {
		ops[i] = Op(i)
	}
	return ops
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// Apply computes bf op rhs as a new field of the receiver's width, carrying a
// copy of its aliases. Division or modulo by zero panics like native integer division.
func (bf *BitField) Apply(op Op, rhs Integer) *BitField {
	y := operand(op, rhs)

	bf.mu.Lock()
	x := bf.value
	bf.mu.Unlock()

	res := newField(compute(op, &x, y), bf.size)
	res.aliases = bf.aliases.clone()
	return res
}

// Update is the in-place form of Apply.
func (bf *BitField) Update(op Op, rhs Integer) {
	y := operand(op, rhs)

	bf.mu.Lock()
	defer bf.mu.Unlock()
	bf.value.And(compute(op, &bf.value, y), mask(bf.size))
}

func (bf *BitField) Add(rhs Integer) *BitField { return bf.Apply(OpAdd, rhs) }
func (bf *BitField) Sub(rhs Integer) *BitField { return bf.Apply(OpSub, rhs) }
func (bf *BitField) Mul(rhs Integer) *BitField { return bf.Apply(OpMul, rhs) }
func (bf *BitField) Div(rhs Integer) *BitField { return bf.Apply(OpDiv, rhs) }
func (bf *BitField) Mod(rhs Integer) *BitField { return bf.Apply(OpMod, rhs) }
func (bf *BitField) And(rhs Integer) *BitField { return bf.Apply(OpAnd, rhs) }
func (bf *BitField) Or(rhs Integer) *BitField { return bf.Apply(OpOr, rhs) }
func (bf *BitField) Xor(rhs Integer) *BitField { return bf.Apply(OpXor, rhs) }
func (bf *BitField) AndNot(rhs Integer) *BitField { return bf.Apply(OpAndNot, rhs) }
func (bf *BitField) Lsh(n uint) *BitField { return bf.Apply(OpLsh, Uint64(n)) }
func (bf *BitField) Rsh(n uint) *BitField { return bf.Apply(OpRsh, Uint64(n)) }
func (bf *BitField) Not() *BitField { return bf.Apply(OpNot, nil) }

// Cmp compares numeric values, ignoring widths. It returns -1, 0 or +1.
func (bf *BitField) Cmp(rhs Integer) int {
	y := intOf(rhs)
	bf.mu.Lock()
	defer bf.mu.Unlock()
	return bf.value.Cmp(y)
}

func (bf *BitField) Eq(rhs Integer) bool { return bf.Cmp(rhs) == 0 }
func (bf *BitField) Lt(rhs Integer) bool { return bf.Cmp(rhs) < 0 }
func (bf *BitField) Le(rhs Integer) bool { return bf.Cmp(rhs) <= 0 }
func (bf *BitField) Gt(rhs Integer) bool { return bf.Cmp(rhs) > 0 }
func (bf *BitField) Ge(rhs Integer) bool { return bf.Cmp(rhs) >= 0 }

// operand snapshots rhs before the receiver is locked, so x.Update(op, x) is safe.
func operand(op Op, rhs Integer) *uint256.Int {
	if op == OpNot {
		return new(uint256.Int)
	}
	return intOf(rhs)
}

func compute(op Op, x *uint256.Int, y *uint256.Int) *uint256.Int {
	z := new(uint256.Int)
	switch op {
	case OpAdd:
		z.Add(x, y)
	case OpSub:
		z.Sub(x, y)
	case OpMul:
		z.Mul(x, y)
	case OpDiv:
		checkDivisor(y)
		z.Div(x, y)
	case OpMod:
		checkDivisor(y)
		z.Mod(x, y)
	case OpAnd:
		z.And(x, y)
	case OpOr:
		z.Or(x, y)
	case OpXor:
		z.Xor(x, y)
	case OpAndNot:
		z.Not(y)
		z.And(x, z)
	case OpLsh:
		z.Lsh(x, shiftCount(y))
	case OpRsh:
		z.Rsh(x, shiftCount(y))
	case OpNot:
		z.Not(x)
	default:
		panic(fmt.Sprintf("bitslice: unknown operator %v", op))
	}
	return z
}

func checkDivisor(y *uint256.Int) {
	if y.IsZero() {
		panic("bitslice: integer divide by zero")
	}
}

// shifts of MaxWidth or more clear every bit
func shiftCount(y *uint256.Int) uint {
	if !y.IsUint64() || y.Uint64() > MaxWidth {
		return MaxWidth
	}
	return uint(y.Uint64())
}
