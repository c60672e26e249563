package calc

import (
	"fmt"
	"strings"
)

// Op is a binary arithmetic operation. The zero value is OpInactive.
type Op int

const (
	OpInactive Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// String returns the operator symbol, or "inactive".
func (o Op) String() string {
	switch o {
	case OpInactive:
		return "inactive"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "unknown"
	}
}

// TagKind identifies the action carried by a Tag.
type TagKind int

const (
	KindTest TagKind = iota
	KindClear
	KindNum
	KindOp
	KindEq
	KindError
)

// Tag is the action identifier a button carries. Only the Backend interprets it.
type Tag struct {
	Kind  TagKind
	Digit int // KindNum only, 0-9
	Op    Op  // KindOp only
}

var (
	Test  = Tag{Kind: KindTest}
	Clear = Tag{Kind: KindClear}
	Eq    = Tag{Kind: KindEq}
	Error = Tag{Kind: KindError}
)

// Num returns the digit tag for d. Out-of-range digits yield the Error tag.
func Num(d int) Tag {
	if d < 0 || d > 9 {
		return Error
	}
	return Tag{Kind: KindNum, Digit: d}
}

// Operation returns the operator tag for o. OpInactive yields the Error tag.
func Operation(o Op) Tag {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return Tag{Kind: KindOp, Op: o}
	default:
		return Error
	}
}

// String returns the canonical key for the tag, as accepted by ParseTag.
func (t Tag) String() string {
	switch t.Kind {
	case KindTest:
		return "test"
	case KindClear:
		return "C"
	case KindNum:
		return fmt.Sprintf("%d", t.Digit)
	case KindOp:
		return t.Op.String()
	case KindEq:
		return "="
	default:
		return "error"
	}
}

// ParseTag maps a key name to its tag. Digits, "+", "-", "*", "/", "=",
// "C"/"clear", "test" and "error" are recognized, case-insensitively.
func ParseTag(key string) (Tag, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	if len(k) == 1 && k[0] >= '0' && k[0] <= '9' {
		return Num(int(k[0] - '0')), nil
	}
	switch k {
	case "+", "add", "plus":
		return Operation(OpAdd), nil
	case "-", "sub", "minus":
		return Operation(OpSub), nil
	case "*", "x", "mul", "times":
		return Operation(OpMul), nil
	case "/", "div":
		return Operation(OpDiv), nil
	case "=", "eq", "equals":
		return Eq, nil
	case "c", "clear":
		return Clear, nil
	case "test":
		return Test, nil
	case "error":
		return Error, nil
	}
	return Error, fmt.Errorf("unknown key %q", key)
}
