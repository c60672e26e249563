package calc

import (
	"errors"
	"math/big"
)

var (
	ten = big.NewInt(10)

	// minInt128 and maxInt128 bound every value the Backend holds.
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))

	// entryLimit is 2^127/10. Digit entry only appends while |num2| is below it.
	entryLimit = new(big.Int).Quo(new(big.Int).Lsh(big.NewInt(1), 127), ten)
)

// Backend is the calculator state machine. It holds two signed 128-bit
// operands and the pending operation, and is mutated only through Apply.
//
// A Backend must not be copied after first use.
type Backend struct {
	fresh     bool // next digit starts a new operand
	num1      big.Int
	num2      big.Int
	operation Op
	err       error // latched arithmetic failure, shown until the next input
}

// NewBackend returns a Backend in its cleared state.
func NewBackend() *Backend {
	b := &Backend{}
	b.reset()
	return b
}

// Apply performs the transition for tag t. An *ArithmeticError is returned
// when the pending operation cannot be settled; the Backend then latches the
// error for display and returns to its cleared state.
func (b *Backend) Apply(t Tag) error {
	switch t.Kind {
	case KindNum:
		if t.Digit < 0 || t.Digit > 9 {
			return nil
		}
		b.err = nil
		b.enterDigit(int64(t.Digit))
	case KindOp:
		if Operation(t.Op).Kind != KindOp {
			return nil
		}
		b.err = nil
		if err := b.settle(); err != nil {
			return b.fail(err)
		}
		b.operation = t.Op
		b.num1.Set(&b.num2)
		b.fresh = true
	case KindEq:
		b.err = nil
		if err := b.settle(); err != nil {
			return b.fail(err)
		}
	case KindClear:
		b.err = nil
		b.reset()
	case KindTest, KindError:
		// no state change
	}
	return nil
}

func (b *Backend) reset() {
	b.fresh = true
	b.num1.SetInt64(0)
	b.num2.SetInt64(0)
	b.operation = OpInactive
}

func (b *Backend) fail(err error) error {
	b.reset()
	b.err = err
	return err
}

func (b *Backend) enterDigit(d int64) {
	digit := big.NewInt(d)
	if b.fresh {
		b.num2.Set(digit)
		b.fresh = false
		return
	}

	var mag big.Int
	mag.Abs(&b.num2)
	if mag.Cmp(entryLimit) < 0 {
		b.num2.Mul(&b.num2, ten)
		b.num2.Add(&b.num2, digit)
		return
	}
	// Past the guard the operand restarts at d.
	b.num2.Set(digit)
}

// settle is the arithmetic step shared by Eq and Op. On success num2 holds
// the result, num1 is zero and the operation is inactive.
func (b *Backend) settle() error {
	var r big.Int
	switch b.operation {
	case OpAdd:
		r.Add(&b.num1, &b.num2)
	case OpSub:
		r.Sub(&b.num1, &b.num2)
	case OpMul:
		r.Mul(&b.num1, &b.num2)
	case OpDiv:
		if b.num2.Sign() == 0 {
			return &ArithmeticError{Op: OpDiv, Err: ErrDivideByZero}
		}
		r.Quo(&b.num1, &b.num2) // truncates toward zero
	default:
		r.Set(&b.num2)
	}
	if !inInt128(&r) {
		return &ArithmeticError{Op: b.operation, Err: ErrOverflow}
	}

	b.num2.Set(&r)
	b.operation = OpInactive
	b.num1.SetInt64(0)
	return nil
}

func inInt128(v *big.Int) bool {
	return v.Cmp(minInt128) >= 0 && v.Cmp(maxInt128) <= 0
}

// Num1 returns a copy of the first operand.
func (b *Backend) Num1() *big.Int { return new(big.Int).Set(&b.num1) }

// Num2 returns a copy of the second operand, which is also the displayed value.
func (b *Backend) Num2() *big.Int { return new(big.Int).Set(&b.num2) }

// Operation returns the pending operation.
func (b *Backend) Operation() Op { return b.operation }

// Fresh reports whether the next digit starts a new operand.
func (b *Backend) Fresh() bool { return b.fresh }

// Err returns the latched arithmetic error, if any.
func (b *Backend) Err() error { return b.err }

// String renders the display: num2 in decimal, or the latched error.
func (b *Backend) String() string {
	if b.err != nil {
		switch {
		case errors.Is(b.err, ErrDivideByZero):
			return "Error: division by zero"
		case errors.Is(b.err, ErrOverflow):
			return "Error: overflow"
		}
		return "Error"
	}
	return b.num2.String()
}

// Snapshot is a plain copy of the Backend state.
type Snapshot struct {
	Display   string `json:"display"`
	Num1      string `json:"num1"`
	Num2      string `json:"num2"`
	Operation string `json:"operation"`
	Fresh     bool   `json:"fresh"`
	Error     string `json:"error,omitempty"`
}

// Snapshot captures the current state.
func (b *Backend) Snapshot() Snapshot {
	s := Snapshot{
		Display:   b.String(),
		Num1:      b.num1.String(),
		Num2:      b.num2.String(),
		Operation: b.operation.String(),
		Fresh:     b.fresh,
	}
	if b.err != nil {
		s.Error = b.err.Error()
	}
	return s
}
