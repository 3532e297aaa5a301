// Package filler commits generated values to live controls and raises the
// synthetic events reactive page code listens for.
package filler

import (
	"context"
	"errors"
	"fmt"

	"formup/internal/application/port/output"
	"formup/internal/domain/entity"
	"formup/internal/usecase/classifier"
	"formup/internal/usecase/generator"
)

type ValueGenerator interface {
	Generate(c entity.FormControl, intent entity.IntentTag) (entity.GeneratedValue, error)
}

// Events raised after a text-like value is written, in order.
var textEvents = []entity.EventType{entity.EventInput, entity.EventChange, entity.EventBlur}

type Filler struct {
	generator ValueGenerator
	logger    output.LoggerPort
}

func New(gen ValueGenerator, logger output.LoggerPort) *Filler {
	return &Filler{
		generator: gen,
		logger:    logger,
	}
}

// Fill processes one control described by desc. Failures are logged and
// reported in the result; they never propagate to the caller.
func (f *Filler) Fill(ctx context.Context, control output.ControlPort, desc entity.FormControl) (result entity.FieldResult) {
	result.Label = desc.Label()

	defer func() {
		if r := recover(); r != nil {
			result.Status = entity.FieldFailed
			result.Err = fmt.Errorf("panic while filling field: %v", r)
			f.logger.Error("Error filling field", "field", result.Label, "error", result.Err)
		}
	}()

	if desc.Disabled || desc.ReadOnly {
		f.logger.Debug("Skipping disabled/readonly field", "field", result.Label)
		result.Status = entity.FieldLocked
		return result
	}

	if desc.Kind != entity.ControlSelect && !desc.IsToggle() {
		result.Intent = classifier.ClassifyControl(desc)
	}

	value, err := f.generator.Generate(desc, result.Intent)
	switch {
	case errors.Is(err, generator.ErrSkipped):
		f.logger.Debug("Skipping field type", "field", result.Label, "type", desc.Type)
		result.Status = entity.FieldUnsupported
		return result
	case errors.Is(err, generator.ErrNoOptions):
		f.logger.Debug("Select has no selectable option", "field", result.Label)
		result.Status = entity.FieldNoOptions
		return result
	case err != nil:
		return f.failed(result, fmt.Errorf("generate value: %w", err))
	}
	result.Value = value.String()

	if err := f.commit(ctx, control, desc, value); err != nil {
		return f.failed(result, err)
	}

	f.logger.Debug("Updated field",
		"field", result.Label,
		"type", desc.Type,
		"intent", result.Intent,
		"value", result.Value,
	)
	result.Status = entity.FieldFilled
	return result
}

func (f *Filler) commit(ctx context.Context, control output.ControlPort, desc entity.FormControl, value entity.GeneratedValue) error {
	switch {
	case desc.IsToggle():
		if err := control.SetChecked(ctx, value.Checked); err != nil {
			return fmt.Errorf("set checked: %w", err)
		}
		return dispatch(ctx, control, entity.EventChange)

	case desc.Kind == entity.ControlSelect:
		if err := control.SetValue(ctx, value.Text); err != nil {
			return fmt.Errorf("set value: %w", err)
		}
		return dispatch(ctx, control, entity.EventChange)
	}

	if err := control.SetValue(ctx, value.Text); err != nil {
		return fmt.Errorf("set value: %w", err)
	}
	return dispatch(ctx, control, textEvents...)
}

func dispatch(ctx context.Context, control output.ControlPort, events ...entity.EventType) error {
	for _, ev := range events {
		if err := control.Dispatch(ctx, ev); err != nil {
			return fmt.Errorf("dispatch %s: %w", ev, err)
		}
	}
	return nil
}

func (f *Filler) failed(result entity.FieldResult, err error) entity.FieldResult {
	result.Status = entity.FieldFailed
	result.Err = err
	f.logger.Error("Error filling field", "field", result.Label, "error", err)
	return result
}
