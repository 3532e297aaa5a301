package entity

type MessageType string

const (
	MessageFillForm MessageType = "FILL_FORM"
)

func (t MessageType) String() string {
	return string(t)
}

type Message struct {
	Type MessageType `json:"type"`
}

type Response struct {
	Data string `json:"data"`
}
