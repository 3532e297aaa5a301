package input

import (
	"context"

	"formup/internal/domain/entity"
)

type FormFiller interface {
	Fill(ctx context.Context) (*entity.FillSummary, error)
}
