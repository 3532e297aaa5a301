package entity

import "strings"

// AttributeBag is the lower-cased, space-joined concatenation of a control's
// non-empty descriptive attributes. It is the only input to classification.
type AttributeBag string

func NewAttributeBag(c FormControl) AttributeBag {
	parts := make([]string, 0, len(DescriptiveAttributes))
	for _, key := range DescriptiveAttributes {
		if v := c.Attributes[key]; v != "" {
			parts = append(parts, v)
		}
	}
	return AttributeBag(strings.ToLower(strings.Join(parts, " ")))
}

func (b AttributeBag) Contains(sub string) bool {
	return strings.Contains(string(b), sub)
}

func (b AttributeBag) ContainsAny(subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(string(b), s) {
			return true
		}
	}
	return false
}
