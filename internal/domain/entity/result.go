package entity

import "fmt"

const NoFieldsMessage = "No form fields found"

type FieldStatus string

const (
	FieldFilled      FieldStatus = "filled"
	FieldHidden      FieldStatus = "hidden"
	FieldLocked      FieldStatus = "disabled_or_readonly"
	FieldUnsupported FieldStatus = "unsupported"
	FieldNoOptions   FieldStatus = "no_options"
	FieldFailed      FieldStatus = "failed"
)

type FieldResult struct {
	Index  int
	Label  string
	Status FieldStatus
	Intent IntentTag
	Value  string
	Err    error
}

// Processed reports whether the control passed the visibility filter and
// was handed to the filler, whatever the filler then did with it.
func (r FieldResult) Processed() bool {
	return r.Status != FieldHidden
}

type FillSummary struct {
	RequestID string
	Total     int
	Filled    int
	Results   []FieldResult
}

func (s *FillSummary) Message() string {
	if s.Total == 0 {
		return NoFieldsMessage
	}
	return fmt.Sprintf("Form filled successfully! Populated %d out of %d fields.", s.Filled, s.Total)
}
