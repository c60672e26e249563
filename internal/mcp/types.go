package mcp

import "github.com/1broseidon/gridcalc/internal/calc"

// PressInput is the input for the press tool.
type PressInput struct {
	Keys []string `json:"keys" jsonschema:"Keys to press in order: digits 0-9, + - * / (or add, sub, mul, div), = (or eq), c (or clear)"`
}

// PressOutput is the output for the press tool.
type PressOutput struct {
	Applied []string      `json:"applied"`
	Errors  []string      `json:"errors,omitempty"`
	State   calc.Snapshot `json:"state"`
}

// DisplayInput is the input for the display tool.
type DisplayInput struct{}

// DisplayOutput is the output for the display tool.
type DisplayOutput struct {
	State calc.Snapshot `json:"state"`
}
