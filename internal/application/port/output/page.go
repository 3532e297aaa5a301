package output

import (
	"context"

	"formup/internal/domain/entity"
)

// PagePort is a document that fill requests run against.
type PagePort interface {
	// Controls returns every input (except submit, button and reset),
	// select and textarea in document order.
	Controls(ctx context.Context) ([]ControlPort, error)
}

// ControlPort is the uniform capability surface over one live control.
type ControlPort interface {
	Describe(ctx context.Context) (entity.FormControl, error)
	SetValue(ctx context.Context, value string) error
	SetChecked(ctx context.Context, checked bool) error
	Dispatch(ctx context.Context, event entity.EventType) error
	Focus(ctx context.Context) error
}
