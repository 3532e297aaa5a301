package output

import (
	"context"

	"formup/internal/domain/entity"
)

// TransportPort delivers a message to whatever serves the page and returns
// its reply. Errors are transport failures only; pipeline failures arrive
// as response text.
type TransportPort interface {
	Send(ctx context.Context, msg entity.Message) (*entity.Response, error)
}
