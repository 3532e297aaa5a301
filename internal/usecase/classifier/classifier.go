// Package classifier infers what kind of data a text-like control expects
// from its descriptive attributes.
package classifier

import "formup/internal/domain/entity"

type rule struct {
	tag   entity.IntentTag
	match func(b entity.AttributeBag) bool
}

// Rules overlap, so the slice order is the precedence: "name" without
// "user" wins before the first/last name rules are consulted.
var rules = []rule{
	{entity.IntentEmail, func(b entity.AttributeBag) bool { return b.ContainsAny("email", "e-mail") }},
	{entity.IntentPhone, func(b entity.AttributeBag) bool { return b.ContainsAny("phone", "tel", "mobile") }},
	{entity.IntentName, func(b entity.AttributeBag) bool { return b.Contains("name") && !b.Contains("user") }},
	{entity.IntentFirstName, func(b entity.AttributeBag) bool { return b.Contains("first") && b.Contains("name") }},
	{entity.IntentLastName, func(b entity.AttributeBag) bool { return b.Contains("last") && b.Contains("name") }},
	{entity.IntentAddress, func(b entity.AttributeBag) bool { return b.ContainsAny("address", "street") }},
	{entity.IntentCity, func(b entity.AttributeBag) bool { return b.Contains("city") }},
	{entity.IntentState, func(b entity.AttributeBag) bool { return b.Contains("state") }},
	{entity.IntentZip, func(b entity.AttributeBag) bool { return b.ContainsAny("zip", "postal") }},
	{entity.IntentCountry, func(b entity.AttributeBag) bool { return b.Contains("country") }},
	{entity.IntentCompany, func(b entity.AttributeBag) bool { return b.ContainsAny("company", "organization") }},
	{entity.IntentAge, func(b entity.AttributeBag) bool { return b.Contains("age") }},
	{entity.IntentBirthdate, func(b entity.AttributeBag) bool { return b.ContainsAny("birth", "dob") }},
	{entity.IntentURL, func(b entity.AttributeBag) bool { return b.ContainsAny("website", "url") }},
	{entity.IntentLongText, func(b entity.AttributeBag) bool { return b.ContainsAny("comment", "message", "description") }},
}

// Classify returns the tag of the first matching rule, or IntentDefault.
func Classify(bag entity.AttributeBag) entity.IntentTag {
	for _, r := range rules {
		if r.match(bag) {
			return r.tag
		}
	}
	return entity.IntentDefault
}

// ClassifyControl builds the attribute bag for c and classifies it.
func ClassifyControl(c entity.FormControl) entity.IntentTag {
	return Classify(entity.NewAttributeBag(c))
}
