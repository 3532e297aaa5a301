package entity

import "strconv"

type ValueKind int

const (
	ValueText ValueKind = iota
	ValueBool
)

// GeneratedValue is either a string in the representation the control
// expects or a checked state for checkboxes and radios.
type GeneratedValue struct {
	Kind    ValueKind
	Text    string
	Checked bool
}

func TextValue(s string) GeneratedValue {
	return GeneratedValue{Kind: ValueText, Text: s}
}

func BoolValue(b bool) GeneratedValue {
	return GeneratedValue{Kind: ValueBool, Checked: b}
}

func (v GeneratedValue) String() string {
	if v.Kind == ValueBool {
		return strconv.FormatBool(v.Checked)
	}
	return v.Text
}
