package input

import (
	"context"

	"formup/internal/domain/entity"
)

// MessageReceiver accepts a message. Handle returns true when it has taken
// ownership of the message and will call respond exactly once, possibly
// after Handle returns. It returns false, without responding, otherwise.
type MessageReceiver interface {
	Handle(ctx context.Context, msg entity.Message, respond func(entity.Response)) bool
}

// MessageHandler answers one message type.
type MessageHandler interface {
	MessageReceiver
	Type() entity.MessageType
}
