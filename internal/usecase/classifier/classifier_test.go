package classifier

import (
	"testing"

	"formup/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		bag  string
		want entity.IntentTag
	}{
		{"user_email_1", entity.IntentEmail},
		{"your e-mail", entity.IntentEmail},
		{"phone", entity.IntentPhone},
		{"hotel", entity.IntentPhone},
		{"mobile-number", entity.IntentPhone},
		{"full_name", entity.IntentName},
		{"username", entity.IntentDefault},
		{"address-line-1", entity.IntentAddress},
		{"street", entity.IntentAddress},
		{"city", entity.IntentCity},
		{"state", entity.IntentState},
		{"zip", entity.IntentZip},
		{"postal-code", entity.IntentZip},
		{"country", entity.IntentCountry},
		{"company", entity.IntentCompany},
		{"organization", entity.IntentCompany},
		{"age", entity.IntentAge},
		{"birth-day", entity.IntentBirthdate},
		{"dob", entity.IntentBirthdate},
		{"website", entity.IntentURL},
		{"profile_url", entity.IntentURL},
		{"comment", entity.IntentLongText},
		{"feedback comment", entity.IntentLongText},
		{"description", entity.IntentLongText},
		{"", entity.IntentDefault},
		{"q", entity.IntentDefault},
	}

	for _, tt := range tests {
		t.Run(tt.bag, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(entity.AttributeBag(tt.bag)))
		})
	}
}

func TestClassify_Precedence(t *testing.T) {
	tests := []struct {
		name string
		bag  string
		want entity.IntentTag
	}{
		// "name" without "user" fires before the first/last name rules.
		{"First name", "first_name", entity.IntentName},
		{"Last name", "lastname", entity.IntentName},
		{"Username first name", "username_first_name", entity.IntentFirstName},
		{"Username last name", "username_last_name", entity.IntentLastName},
		{"Email beats name", "email name", entity.IntentEmail},
		{"Phone beats address", "street telephone", entity.IntentPhone},
		// "state" contains no "tel"; "telstate" does.
		{"Tel in state", "telstate", entity.IntentPhone},
		{"Page contains age", "homepage", entity.IntentAge},
		{"Comment after url", "url comment", entity.IntentURL},
		// "message" contains "age".
		{"Message is age", "message", entity.IntentAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(entity.AttributeBag(tt.bag)))
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	bag := entity.AttributeBag("billing city")

	first := Classify(bag)
	second := Classify(bag)

	assert.Equal(t, first, second)
	assert.Equal(t, entity.IntentCity, first)
}

func TestClassifyControl(t *testing.T) {
	c := entity.FormControl{
		Kind: entity.ControlInput,
		Type: entity.TypeNumber,
		Attributes: map[string]string{
			entity.AttrName:      "q1",
			entity.AttrAriaLabel: "Your Email Address",
		},
	}

	assert.Equal(t, entity.IntentEmail, ClassifyControl(c), "native subtype does not affect classification")
}
