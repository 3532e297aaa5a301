// Package local delivers messages to an in-process receiver.
package local

import (
	"context"
	"fmt"

	"formup/internal/application/port/input"
	"formup/internal/application/port/output"
	"formup/internal/application/service"
	"formup/internal/domain/entity"
)

var _ output.TransportPort = (*Transport)(nil)

type Transport struct {
	receiver input.MessageReceiver
}

func New(receiver input.MessageReceiver) *Transport {
	return &Transport{receiver: receiver}
}

func (t *Transport) Send(ctx context.Context, msg entity.Message) (*entity.Response, error) {
	replies := make(chan entity.Response, 1)
	if !t.receiver.Handle(ctx, msg, func(r entity.Response) { replies <- r }) {
		return nil, fmt.Errorf("%w: %s", service.ErrNoReceiver, msg.Type)
	}

	select {
	case r := <-replies:
		return &r, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for response: %w", ctx.Err())
	}
}
