package entity

type IntentTag string

const (
	IntentEmail     IntentTag = "email"
	IntentPhone     IntentTag = "phone"
	IntentName      IntentTag = "name"
	IntentFirstName IntentTag = "firstName"
	IntentLastName  IntentTag = "lastName"
	IntentAddress   IntentTag = "address"
	IntentCity      IntentTag = "city"
	IntentState     IntentTag = "state"
	IntentZip       IntentTag = "zip"
	IntentCountry   IntentTag = "country"
	IntentCompany   IntentTag = "company"
	IntentAge       IntentTag = "age"
	IntentBirthdate IntentTag = "birthdate"
	IntentURL       IntentTag = "url"
	IntentLongText  IntentTag = "longText"
	IntentDefault   IntentTag = "default"
)

func (t IntentTag) String() string {
	return string(t)
}
