package layout

import "github.com/1broseidon/gridcalc/internal/calc"

// keyTags maps keysym names, as returned by keybind.LookupString, to tags.
var keyTags = map[string]calc.Tag{
	"+":           calc.Operation(calc.OpAdd),
	"plus":        calc.Operation(calc.OpAdd),
	"KP_Add":      calc.Operation(calc.OpAdd),
	"-":           calc.Operation(calc.OpSub),
	"minus":       calc.Operation(calc.OpSub),
	"KP_Subtract": calc.Operation(calc.OpSub),
	"*":           calc.Operation(calc.OpMul),
	"asterisk":    calc.Operation(calc.OpMul),
	"KP_Multiply": calc.Operation(calc.OpMul),
	"/":           calc.Operation(calc.OpDiv),
	"slash":       calc.Operation(calc.OpDiv),
	"KP_Divide":   calc.Operation(calc.OpDiv),
	"=":           calc.Eq,
	"equal":       calc.Eq,
	"Return":      calc.Eq,
	"KP_Enter":    calc.Eq,
	"c":           calc.Clear,
	"C":           calc.Clear,
	"Escape":      calc.Clear,
	"BackSpace":   calc.Clear,
}

func init() {
	for d := 0; d <= 9; d++ {
		name := string(rune('0' + d))
		keyTags[name] = calc.Num(d)
		keyTags["KP_"+name] = calc.Num(d)
	}
}

// KeyTag returns the tag bound to a key, if any.
func KeyTag(key string) (calc.Tag, bool) {
	tag, ok := keyTags[key]
	return tag, ok
}
