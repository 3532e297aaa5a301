// Package autofill collects the controls of a page, drives the filler over
// the visible ones and schedules the post-fill focus.
package autofill

import (
	"context"
	"fmt"
	"time"

	"formup/internal/application/port/input"
	"formup/internal/application/port/output"
	"formup/internal/domain/entity"

	"github.com/google/uuid"
)

var _ input.FormFiller = (*UseCase)(nil)

const DefaultFocusDelay = 100 * time.Millisecond

type FieldFiller interface {
	Fill(ctx context.Context, control output.ControlPort, desc entity.FormControl) entity.FieldResult
}

type UseCase struct {
	page       output.PagePort
	filler     FieldFiller
	scheduler  output.SchedulerPort
	logger     output.LoggerPort
	focusDelay time.Duration
}

func New(
	page output.PagePort,
	filler FieldFiller,
	scheduler output.SchedulerPort,
	logger output.LoggerPort,
) *UseCase {
	return &UseCase{
		page:       page,
		filler:     filler,
		scheduler:  scheduler,
		logger:     logger,
		focusDelay: DefaultFocusDelay,
	}
}

func (uc *UseCase) WithFocusDelay(d time.Duration) *UseCase {
	uc.focusDelay = d
	return uc
}

func (uc *UseCase) Fill(ctx context.Context) (*entity.FillSummary, error) {
	summary := &entity.FillSummary{RequestID: uuid.NewString()}
	log := uc.logger.WithField("request_id", summary.RequestID)

	controls, err := uc.page.Controls(ctx)
	if err != nil {
		log.Error("Error collecting form fields", "error", err)
		return nil, fmt.Errorf("collect form fields: %w", err)
	}

	summary.Total = len(controls)
	log.Info("Found form fields", "count", summary.Total)
	if summary.Total == 0 {
		return summary, nil
	}

	for i, control := range controls {
		result := uc.process(ctx, log, control)
		result.Index = i
		if result.Processed() {
			summary.Filled++
		}
		summary.Results = append(summary.Results, result)
	}

	uc.scheduleFocus(ctx, log, controls)

	log.Info("Form filled", "filled", summary.Filled, "total", summary.Total)
	return summary, nil
}

func (uc *UseCase) process(ctx context.Context, log output.LoggerPort, control output.ControlPort) entity.FieldResult {
	desc, err := control.Describe(ctx)
	if err != nil {
		log.Error("Error reading field", "error", err)
		return entity.FieldResult{
			Status: entity.FieldFailed,
			Err:    fmt.Errorf("describe control: %w", err),
		}
	}

	if !desc.Style.Visible() {
		log.Debug("Skipping hidden field", "field", desc.Label())
		return entity.FieldResult{Label: desc.Label(), Status: entity.FieldHidden}
	}

	return uc.filler.Fill(ctx, control, desc)
}

// scheduleFocus focuses the first control not hidden by display or
// visibility once the delay elapses. The task outlives the request.
func (uc *UseCase) scheduleFocus(ctx context.Context, log output.LoggerPort, controls []output.ControlPort) {
	ctx = context.WithoutCancel(ctx)

	uc.scheduler.AfterFunc(uc.focusDelay, func() {
		for _, control := range controls {
			desc, err := control.Describe(ctx)
			if err != nil || !desc.Style.Focusable() {
				continue
			}
			if err := control.Focus(ctx); err != nil {
				log.Debug("Could not focus field", "field", desc.Label(), "error", err)
			}
			return
		}
	})
}
