// Package handler adapts use cases to the message boundary.
package handler

import (
	"context"
	"fmt"

	"formup/internal/application/port/input"
	"formup/internal/application/port/output"
	"formup/internal/domain/entity"
)

var _ input.MessageHandler = (*FillFormHandler)(nil)

const fillErrorPrefix = "Error filling form: "

type FillFormHandler struct {
	filler input.FormFiller
	logger output.LoggerPort
}

func NewFillFormHandler(filler input.FormFiller, logger output.LoggerPort) *FillFormHandler {
	return &FillFormHandler{
		filler: filler,
		logger: logger,
	}
}

func (h *FillFormHandler) Type() entity.MessageType {
	return entity.MessageFillForm
}

// Handle runs the fill in its own goroutine and answers through respond.
func (h *FillFormHandler) Handle(ctx context.Context, msg entity.Message, respond func(entity.Response)) bool {
	go func() {
		respond(entity.Response{Data: h.fill(ctx)})
	}()
	return true
}

func (h *FillFormHandler) fill(ctx context.Context) (text string) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("Error in form filling", "error", r)
			text = fmt.Sprintf("%s%v", fillErrorPrefix, r)
		}
	}()

	summary, err := h.filler.Fill(ctx)
	if err != nil {
		h.logger.Error("Error in form filling", "error", err)
		return fillErrorPrefix + err.Error()
	}
	return summary.Message()
}
